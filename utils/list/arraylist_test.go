package list

import (
	"testing"
)

func TestArrayList_Add(t *testing.T) {
	queue := &ArrayList[int]{}

	queue.Add(3)
	queue.Add(7)

	if queue.Size() != 2 {
		t.Errorf("Expected size 2, got %d", queue.Size())
	}
}

func TestArrayList_Remove(t *testing.T) {
	queue := &ArrayList[int]{}

	queue.Add(3)
	queue.Add(7)
	queue.Add(5)

	queue.Remove(1) // Eliminar el elemento en índice 1

	if queue.Size() != 2 {
		t.Errorf("Expected size 2, got %d", queue.Size())
	}

	value, _ := queue.Get(1)

	if value != 5 {
		t.Errorf("Expected 5 at index 1, got %d", value)
	}
}

func TestArrayList_Size(t *testing.T) {
	queue := &ArrayList[int]{}

	if queue.Size() != 0 {
		t.Errorf("Expected size 0, got %d", queue.Size())
	}

	queue.Add(3)

	if queue.Size() != 1 {
		t.Errorf("Expected size 1, got %d", queue.Size())
	}
}

func TestArrayList_Dequeue(t *testing.T) {
	queue := &ArrayList[int]{}

	queue.Add(3)
	queue.Add(7)
	queue.Add(5)

	value := queue.Size()
	if value != 3 {
		t.Errorf("Expected size 3, got %d", value)
	}

	value, err := queue.Dequeue()
	if err != nil || value != 3 {
		t.Errorf("Expected 3 at index 0, got %d", value)
	}

	value = queue.Size()
	if value != 2 {
		t.Errorf("Expected size 2, got %d", value)
	}

	value, err = queue.Get(0)
	if err != nil || value != 7 {
		t.Errorf("Expected 7 at index 0, got %d", value)
	}
}

func TestArrayList_Dequeue_ThrowError(t *testing.T) {
	queue := &ArrayList[int]{}

	_, err := queue.Dequeue()
	if err == nil {
		t.Errorf("Expected error, got nil")
	}
}

func TestArrayList_Peek(t *testing.T) {
	queue := &ArrayList[int]{}

	queue.Add(3)
	queue.Add(7)

	value, err := queue.Peek()
	if err != nil || value != 3 {
		t.Errorf("Expected 3 at head, got %d", value)
	}

	// Peek no remueve
	if queue.Size() != 2 {
		t.Errorf("Expected size 2, got %d", queue.Size())
	}
}

func TestArrayList_Peek_ThrowError(t *testing.T) {
	queue := &ArrayList[int]{}

	_, err := queue.Peek()
	if err == nil {
		t.Errorf("Expected error, got nil")
	}
}

func TestArrayList_Find(t *testing.T) {
	queue := &ArrayList[int]{}

	queue.Add(3)
	queue.Add(7)
	queue.Add(5)

	value, index, found := queue.Find(func(frame int) bool {
		return frame == 7
	})

	if !found || value != 7 || index != 1 {
		t.Errorf("Expected to find 7 at index 1, got %d at %d", value, index)
	}

	_, _, found = queue.Find(func(frame int) bool {
		return frame == 99
	})

	if found {
		t.Errorf("Expected not to find 99")
	}
}

func TestArrayList_RemoveWhere(t *testing.T) {
	queue := &ArrayList[int]{}

	queue.Add(3)
	queue.Add(7)
	queue.Add(5)

	queue.RemoveWhere(func(frame int) bool {
		return frame == 7
	})

	if queue.Size() != 2 {
		t.Errorf("Expected size 2, got %d", queue.Size())
	}

	value, _ := queue.Get(1)
	if value != 5 {
		t.Errorf("Expected 5 at index 1, got %d", value)
	}
}

func TestArrayList_RemoveAllWhere(t *testing.T) {
	queue := &ArrayList[int]{}

	queue.Add(3)
	queue.Add(7)
	queue.Add(5)
	queue.Add(7)

	queue.RemoveAllWhere(func(frame int) bool {
		return frame == 7
	})

	if queue.Size() != 2 {
		t.Errorf("Expected size 2, got %d", queue.Size())
	}

	value, _ := queue.Get(0)
	if value != 3 {
		t.Errorf("Expected 3 at index 0, got %d", value)
	}

	value, _ = queue.Get(1)
	if value != 5 {
		t.Errorf("Expected 5 at index 1, got %d", value)
	}
}

func TestArrayList_Clear(t *testing.T) {
	queue := &ArrayList[int]{}

	queue.Add(3)
	queue.Add(7)

	queue.Clear()

	if queue.Size() != 0 {
		t.Errorf("Expected size 0, got %d", queue.Size())
	}
}

func TestArrayList_GetAll(t *testing.T) {
	queue := &ArrayList[int]{}

	queue.Add(3)
	queue.Add(7)

	todos := queue.GetAll()

	if len(todos) != 2 || todos[0] != 3 || todos[1] != 7 {
		t.Errorf("Expected [3 7], got %v", todos)
	}

	// La copia no comparte el slice interno
	todos[0] = 99
	value, _ := queue.Get(0)
	if value != 3 {
		t.Errorf("Expected GetAll to return a copy, got %d", value)
	}
}
