package stats

import (
	"reflect"
	"sync"
	"testing"
)

func TestTracker_Empty(t *testing.T) {
	snap := NewTracker().Snapshot()
	if snap.Checks != 0 || snap.Corrections != 0 {
		t.Errorf("empty tracker snapshot = %+v", snap)
	}
	if len(snap.ByCategory) != 0 {
		t.Errorf("empty tracker has categories: %v", snap.ByCategory)
	}
}

func TestTracker_RecordCheck(t *testing.T) {
	tracker := NewTracker()
	tracker.RecordCheck([]string{"Subject-Verb Agreement", "Verb Forms"})
	tracker.RecordCheck([]string{"Verb Forms"})
	tracker.RecordCheck(nil) // Clean sentence

	snap := tracker.Snapshot()
	if snap.Checks != 3 {
		t.Errorf("checks = %d, want 3", snap.Checks)
	}
	if snap.Corrections != 3 {
		t.Errorf("corrections = %d, want 3", snap.Corrections)
	}
	if snap.ByCategory["Verb Forms"] != 2 {
		t.Errorf("Verb Forms = %d, want 2", snap.ByCategory["Verb Forms"])
	}
	if snap.ByCategory["Subject-Verb Agreement"] != 1 {
		t.Errorf("Subject-Verb Agreement = %d, want 1", snap.ByCategory["Subject-Verb Agreement"])
	}
}

func TestTracker_ConcurrentRecording(t *testing.T) {
	tracker := NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.RecordCheck([]string{"Auxiliary Verbs"})
		}()
	}
	wg.Wait()

	snap := tracker.Snapshot()
	if snap.Checks != 50 {
		t.Errorf("checks = %d, want 50", snap.Checks)
	}
	if snap.ByCategory["Auxiliary Verbs"] != 50 {
		t.Errorf("Auxiliary Verbs = %d, want 50", snap.ByCategory["Auxiliary Verbs"])
	}
}

func TestSnapshot_TopCategories(t *testing.T) {
	tracker := NewTracker()
	tracker.RecordCheck([]string{"B", "B", "A", "C"})

	got := tracker.Snapshot().TopCategories()
	want := []string{"B", "A", "C"} // By count desc, ties alphabetical
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopCategories() = %v, want %v", got, want)
	}
}
