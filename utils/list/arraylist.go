package list

import (
	"fmt"
	"sync"
)

// List Definir la interfaz List
type List[T any] interface {
	Add(item T)                                 // Añadir un elemento al final de la lista
	Dequeue() (T, error)                        // Eliminar y devolver el primer elemento de la lista
	Peek() (T, error)                           // Devolver el primer elemento sin removerlo
	Find(predicate func(T) bool) (T, int, bool) // Permite buscar un elemento de la lista dado un predicado.
	ForEach(callback func(T))                   // A cada elemento de la lista se le va aplicar la función que le pase
	Get(index int) (T, error)                   // Obtener un elemento a partir de un índice dado
	GetAll() []T                                // Retorna todos los elementos que se encuentra en la lista
	Remove(index int)                           // Eliminar un elemento en el índice dado
	RemoveWhere(match func(T) bool)             // Eliminar el primer elemento que cumpla el predicado
	RemoveAllWhere(match func(T) bool)          // Eliminar todos los elementos que cumplan el predicado
	Clear()                                     // Vaciar la lista
	Size() int                                  // Retornar el tamaño de la lista
}

// ArrayList implements List
type ArrayList[T any] struct {
	mu    sync.RWMutex
	items []T
}

// Add inserta un elemento al final de la lista.
//
// Parámetros:
//   - item: Elemento a insertar.
//
// Ejemplo:
//
//	func main() {
//		queue := &ArrayList[int]{}
//		queue.Add(0) // el marco 0 entra a la cola de admisión
//		queue.Add(1)
//	}
func (list *ArrayList[T]) Add(item T) {
	list.mu.Lock() // Bloqueo exclusivo para evitar cambios simultáneos
	defer list.mu.Unlock()

	list.items = append(list.items, item)
}

// Dequeue elimina y devuelve el primer elemento de la cola.
// En caso de que la lista se encuentre vacía retorna el valor "cero" del tipo T y un error indicando que está vacía.
//
// Ejemplo:
//
//	func main() {
//		queue := &list.ArrayList[int]{}
//		queue.Add(3)
//		queue.Add(7)
//		head, _ := queue.Dequeue()
//		fmt.Println("Marco: ", head) //output: 3
//	}
func (list *ArrayList[T]) Dequeue() (T, error) {
	list.mu.Lock() // Bloqueo exclusivo para evitar cambios simultáneos
	defer list.mu.Unlock()

	if len(list.items) == 0 {
		var zero T // Devuelve el valor "cero" del tipo T
		return zero, fmt.Errorf("list is empty")
	}
	valor := list.items[0]
	list.items = list.items[1:]
	return valor, nil
}

// Peek devuelve el primer elemento de la cola sin removerlo.
// En caso de que la lista se encuentre vacía retorna el valor "cero" del tipo T y un error.
//
// Ejemplo:
//
//	func main() {
//		queue := &list.ArrayList[int]{}
//		queue.Add(3)
//		queue.Add(7)
//		victim, _ := queue.Peek()
//		fmt.Println("Próxima víctima: ", victim) //output: 3
//	}
func (list *ArrayList[T]) Peek() (T, error) {
	list.mu.RLock() //Bloqueo de solo lectura: permite otras lecturas concurrentes
	defer list.mu.RUnlock()

	if len(list.items) == 0 {
		var zero T
		return zero, fmt.Errorf("list is empty")
	}
	return list.items[0], nil
}

// Find permite buscar un elemento de la lista dado un predicado.
//
// Parámetros:
//   - predicate: Función que permite identificar el elemento buscado.
//
// Ejemplo:
//
//	func main() {
//		queue := &ArrayList[int]{}
//
//		queue.Add(3)
//		queue.Add(7)
//
//		frame, index, found := queue.Find(func(frame int) bool {
//			return frame == 7
//		})
//	}
func (list *ArrayList[T]) Find(predicate func(T) bool) (T, int, bool) {
	list.mu.RLock() //Bloqueo de solo lectura: permite otras lecturas concurrentes
	defer list.mu.RUnlock()

	for i, item := range list.items {
		if predicate(item) {
			return item, i, true
		}
	}
	var zero T
	return zero, -1, false
}

// Get devuelve el elemento en el índice proporcionado.
//
// Parámetros:
//   - index: Índice del elemento a obtener.
//
// Ejemplo:
//
//	func main() {
//		queue := &ArrayList[int]{}
//		queue.Add(3)
//		queue.Add(7)
//
//		value, _ := queue.Get(1)
//		fmt.Println("Valor: ", value) //Output: 7
//	}
func (list *ArrayList[T]) Get(index int) (T, error) {
	list.mu.RLock() //Bloqueo de solo lectura: permite otras lecturas concurrentes
	defer list.mu.RUnlock()

	// Validar si el índice está dentro del rango
	if index < 0 || index >= len(list.items) {
		var zero T // Crear un valor cero del tipo genérico T
		return zero, fmt.Errorf("index out of range: %d", index)
	}
	return list.items[index], nil
}

// GetAll retorna una copia de todos los elementos de la lista en orden.
func (list *ArrayList[T]) GetAll() []T {
	list.mu.RLock() //Bloqueo de solo lectura: permite otras lecturas concurrentes
	defer list.mu.RUnlock()

	todos := make([]T, len(list.items))
	copy(todos, list.items)
	return todos
}

// Remove remueve un elemento de la lista a partir de su índice.
//
// Parámetros:
//   - index: Índice del elemento a remover.
//
// Ejemplo:
//
//	func main() {
//		queue := &ArrayList[int]{}
//		queue.Add(3)
//		queue.Add(7)
//		queue.Add(5)
//		// Eliminar el elemento en índice 1
//		queue.Remove(1)  //[3, 5]
//	}
func (list *ArrayList[T]) Remove(index int) {
	list.mu.Lock() // Bloqueo exclusivo para evitar cambios simultáneos
	defer list.mu.Unlock()

	if index >= 0 && index < len(list.items) {
		list.items = append(list.items[:index], list.items[index+1:]...)
	}
}

// RemoveWhere elimina el primer elemento que cumpla el predicado.
func (list *ArrayList[T]) RemoveWhere(match func(T) bool) {
	list.mu.Lock() // Bloqueo exclusivo para evitar cambios simultáneos
	defer list.mu.Unlock()

	for i, item := range list.items {
		if match(item) {
			list.items = append(list.items[:i], list.items[i+1:]...)
			break
		}
	}
}

// RemoveAllWhere elimina todos los elementos que cumplan el predicado.
// Se usa para purgar de la cola todos los marcos de un proceso finalizado.
func (list *ArrayList[T]) RemoveAllWhere(match func(T) bool) {
	list.mu.Lock() // Bloqueo exclusivo para evitar cambios simultáneos
	defer list.mu.Unlock()

	restantes := list.items[:0]
	for _, item := range list.items {
		if !match(item) {
			restantes = append(restantes, item)
		}
	}
	list.items = restantes
}

// Clear vacía la lista por completo.
func (list *ArrayList[T]) Clear() {
	list.mu.Lock() // Bloqueo exclusivo para evitar cambios simultáneos
	defer list.mu.Unlock()

	list.items = nil
}

// Size devuelve el tamaño de la lista.
//
// Ejemplo
//
//	func main() {
//	    queue := &ArrayList[int]{}
//
//	    queue.Add(3)
//	    queue.Add(7)
//
//	    size := queue.Size()
//	    fmt.Println("Size: ", size) //output: 2
//	}
func (list *ArrayList[T]) Size() int {
	list.mu.RLock() //Bloqueo de solo lectura: permite otras lecturas concurrentes
	defer list.mu.RUnlock()

	return len(list.items)
}

// ForEach a cada elemento de la lista se le va a aplicar la función que le pase.
//
// Parámetros:
//   - callback: es una función que se ejecuta para cada elemento de la lista.
//
// Ejemplo
//
//	func main() {
//	    queue := &ArrayList[int]{}
//
//	    queue.Add(3)
//	    queue.Add(7)
//
//	    queue.ForEach(func(frame int) {
//	    	fmt.Println("Marco:", frame)
//	    })
//	}
func (list *ArrayList[T]) ForEach(callback func(T)) {
	list.mu.Lock() // Bloqueo exclusivo para evitar cambios simultáneos
	defer list.mu.Unlock()

	for _, item := range list.items {
		callback(item)
	}
}
