package list

import (
	"testing"
)

type frameEntry struct {
	frame int
	pid   int
}

var admissions ArrayList[frameEntry]

func TestArrayList_Struct(t *testing.T) {
	setupAdmissions()

	if admissions.Size() != 3 {
		t.Errorf("Expected size 3, got %d", admissions.Size())
	}

	value, err := admissions.Dequeue()
	if err != nil || value.frame != 0 {
		t.Errorf("Expected frame 0 at head, got %d", value.frame)
	}

	size := admissions.Size()
	if size != 2 {
		t.Errorf("Expected size 2, got %d", size)
	}

	value, err = admissions.Get(0)
	if err != nil || value.frame != 1 {
		t.Errorf("Expected frame 1 at index 0, got %d", value.frame)
	}

	admissions.RemoveAllWhere(func(entry frameEntry) bool {
		return entry.pid == 1
	})

	if admissions.Size() != 0 {
		t.Errorf("Expected size 0, got %d", admissions.Size())
	}
}

func setupAdmissions() {
	admissions = ArrayList[frameEntry]{}
	for i := 0; i < 3; i++ {
		admissions.Add(frameEntry{frame: i, pid: 1})
	}
}
