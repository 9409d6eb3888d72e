package pipeline

import "testing"

func TestAcquireLockIsExclusive(t *testing.T) {
	dir := t.TempDir()

	lock, err := AcquireLock(dir)
	if err != nil {
		t.Fatalf("AcquireLock: %v", err)
	}
	defer func() { _ = lock.Release() }()

	if _, err := AcquireLock(dir); err == nil {
		t.Fatal("second acquisition should fail while lock held")
	}

	if err := lock.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	relocked, err := AcquireLock(dir)
	if err != nil {
		t.Fatalf("reacquire after release: %v", err)
	}
	_ = relocked.Release()
}
