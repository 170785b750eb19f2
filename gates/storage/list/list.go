package list

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"listServer/gates/storage"
)

type List struct {
	length    int64 // Текущая длина списка (количество узлов)
	firstNode *node // Указатель на первый узел
	lastNode  *node // Указатель на последний узел (для ускорения вставки элемента в конец)
	idInitial int64
	idCounter int64
	V         reflect.Type // фиксируется при добавлении первого элемента, сбрасывается при удалении всех элементов
	allocated int64        // Сколько узлов было создано за время жизни списка
	released  int64        // Сколько узлов было освобождено; после Clear равно allocated
	free      func(value any)
	mu        sync.RWMutex
}

// NewList создает новый пустой односвязный список
func NewList(initID int64) (l *List) {
	return &List{length: 0, firstNode: nil, lastNode: nil, idInitial: initID, idCounter: initID, V: nil}
}

// Len возвращает количество элементов в списке
func (l *List) Len() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.length
}

// SetFreeMethod задает функцию, вызываемую ровно один раз для значения
// каждого освобождаемого узла. Используется для контроля освобождений в тестах
func (l *List) SetFreeMethod(fn func(value any)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.free = fn
}

// Allocated возвращает количество созданных узлов за время жизни списка
func (l *List) Allocated() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.allocated
}

// Released возвращает количество освобожденных узлов за время жизни списка.
// Если список пуст, Released совпадает с Allocated: каждый узел
// освобождается ровно один раз
func (l *List) Released() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.released
}

// Add добавляет элемент в конец списка, возвращает идентификатор добавленного элемента
func (l *List) Add(value any) (id int64, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Согласование типа элементов
	if l.V == nil {
		l.V = reflect.TypeOf(value)
	} else if l.V != reflect.TypeOf(value) {
		return 0, storage.ErrMismatchType
	}

	// Создание нового узла и добавление его в конец
	newNode := l.newNode(l.idCounter, value)
	l.idCounter++
	l.length++
	// Случай вставки первого элемента, когда не определены первый и последний узлы
	if l.firstNode == nil {
		l.firstNode = newNode
		l.lastNode = newNode
		return newNode.id, nil
	}
	l.lastNode.nextNode = newNode
	l.lastNode = l.lastNode.nextNode
	return newNode.id, nil
}

// PushFront добавляет элемент в начало списка, возвращает идентификатор добавленного элемента.
// Новый узел принимает владение прежней головой через поле nextNode и сам становится головой.
// Корректно работает и на пустом списке: преемник нового узла остается отсутствующим
func (l *List) PushFront(value any) (id int64, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Согласование типа элементов
	if l.V == nil {
		l.V = reflect.TypeOf(value)
	} else if l.V != reflect.TypeOf(value) {
		return 0, storage.ErrMismatchType
	}

	// Передача владения прежней головой новому узлу
	newNode := l.newNode(l.idCounter, value)
	l.idCounter++
	l.length++
	newNode.nextNode = l.firstNode
	l.firstNode = newNode
	// Случай вставки первого элемента, когда не определен последний узел
	if l.lastNode == nil {
		l.lastNode = newNode
	}
	return newNode.id, nil
}

// RemoveByID удаляет элемент по уникальному идентификатору
func (l *List) RemoveByID(id int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Случай out-of-range идентификатора
	if id >= l.idCounter || id < l.idInitial {
		return
	}

	// Случай попытки удаления из пустого списка
	if l.firstNode == nil {
		return
	}

	// Случай удаления первого элемента
	if l.firstNode.id == id {
		l.detachFirstUnsafely()
		return
	}

	// Проходимся по узлам и останавливаемся на нужном
	prevNode := l.firstNode
	for ; prevNode.nextNode != nil && prevNode.nextNode.id != id; prevNode = prevNode.nextNode {
	}
	// Прошли через весь список и не нашли нужный узел
	if prevNode.nextNode == nil {
		return
	}
	l.detachAfterUnsafely(prevNode)
}

// RemoveByValue удаляет первый встретившийся элемент с данным значением
func (l *List) RemoveByValue(value any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Согласование типа элементов
	if l.V != reflect.TypeOf(value) {
		return
	}

	l.removeByValueUnsafely(value)
}

func (l *List) removeByValueUnsafely(value any) {
	// Случай попытки удаления из пустого списка
	if l.firstNode == nil {
		return
	}

	// Случай удаления первого элемента
	if l.firstNode.value == value {
		l.detachFirstUnsafely()
		return
	}

	// Проходимся по узлам и останавливаемся на нужном
	currentNode := l.firstNode
	for ; currentNode.nextNode != nil && currentNode.nextNode.value != value; currentNode = currentNode.nextNode {
	}
	// Прошли через весь список и не нашли нужный узел
	if currentNode.nextNode == nil {
		return
	}
	l.detachAfterUnsafely(currentNode)
}

// RemoveAllByValue удаляет все элементы с данным значением
func (l *List) RemoveAllByValue(value any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Согласование типа элементов
	if l.V != reflect.TypeOf(value) {
		return
	}

	for l.firstNode != nil && l.firstNode.value == value {
		l.detachFirstUnsafely()
	}
	if l.firstNode == nil {
		return
	}
	for currentNode := l.firstNode; currentNode.nextNode != nil; {
		if currentNode.nextNode.value == value {
			l.detachAfterUnsafely(currentNode)
		} else {
			currentNode = currentNode.nextNode
		}
	}
}

// detachFirstUnsafely отбирает у головы списка владение первым узлом и освобождает его
func (l *List) detachFirstUnsafely() {
	detached := l.firstNode
	// Случай удаления единственного элемента
	if detached.nextNode == nil {
		l.lastNode = nil
	}
	l.firstNode = detached.nextNode
	l.release(detached)
	l.length--
	// Сброс типа элементов
	if l.length == 0 {
		l.V = nil
	}
}

// detachAfterUnsafely отбирает у узла prevNode владение его преемником и освобождает его
func (l *List) detachAfterUnsafely(prevNode *node) {
	detached := prevNode.nextNode
	// Случай удаления последнего элемента
	if detached == l.lastNode {
		l.lastNode = prevNode
	}
	prevNode.nextNode = detached.nextNode
	l.release(detached)
	l.length--
	// Сброс типа элементов
	if l.length == 0 {
		l.V = nil
	}
}

// GetByID возвращает значение элемента с данным идентификатором
func (l *List) GetByID(id int64) (value any, ok bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if id >= l.idCounter || id < l.idInitial || l.firstNode == nil {
		return 0, false
	}

	currentNode := l.firstNode
	for ; currentNode.id != id; currentNode = currentNode.nextNode {
		if currentNode.nextNode == nil {
			return 0, false
		}
	}
	return currentNode.value, true
}

// GetByValue возвращает идентификатор первого по порядку элемента с данным значением
// Если не находит элемента с данным значением, возвращает 0 и false
func (l *List) GetByValue(value any) (id int64, ok bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.nextNode {
		if currentNode.value == value {
			return currentNode.id, true
		}
	}
	return 0, false
}

// GetAllByValue возвращает идентификаторы всех элементов с данным значением
// Если элементы с данным значением не найдены, возвращает nil и false
func (l *List) GetAllByValue(value any) (ids []int64, ok bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.nextNode {
		if currentNode.value == value {
			ids = append(ids, currentNode.id)
		}
	}
	// Случай пустого списка
	if len(ids) == 0 {
		return nil, false
	}
	return ids, true
}

// UpdateByID обновляет значение элемента по идентификатору
// Если элемента с таким идентификатором нет, возвращает false и nil.
// При несоответствии типа элемента возвращает false и ErrMismatchType
func (l *List) UpdateByID(id int64, value any) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Случай пустого списка
	if l.length == 0 {
		return false, nil
	}

	// Согласование типа элементов
	if l.V != reflect.TypeOf(value) {
		return false, storage.ErrMismatchType
	}

	// Проходимся по узлам
	for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.nextNode {
		if currentNode.id == id {
			currentNode.value = value
			return true, nil
		}
	}

	// Прошли по всем узлам и не нашли нужный
	return false, nil
}

// GetAll возвращает все элементы списка в виде map[int64]any. Если список пуст, возвращает nil и false.
func (l *List) GetAll() (map[int64]any, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	// Случай пустого списка
	if l.length == 0 {
		return nil, false
	}

	mp := make(map[int64]any, l.length)

	for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.nextNode {
		mp[currentNode.id] = currentNode.value
	}
	return mp, true
}

// Clear удаляет все элементы из списка.
// Голова отдает владение первым узлом, после чего узлы освобождаются
// по цепочке: каждый узел ровно один раз, без утечек и двойных освобождений.
// Связи nextNode разрываются, поэтому итератор, полученный до Clear,
// завершится, а не пройдет по освобожденной цепочке
func (l *List) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	currentNode := l.firstNode
	l.firstNode = nil
	l.lastNode = nil
	for currentNode != nil {
		next := currentNode.nextNode
		l.release(currentNode)
		currentNode = next
	}
	l.length = 0
	l.idCounter = l.idInitial
	l.V = nil
}

// String возвращает строковое представление цепочки вида "3 -> 5 -> 13 -> 2 -> null".
// Для пустого списка возвращает "null"
func (l *List) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var sb strings.Builder
	for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.nextNode {
		fmt.Fprintf(&sb, "%v -> ", currentNode.value)
	}
	sb.WriteString("null")
	return sb.String()
}

// Print выводит список в консоль
func (l *List) Print() {
	l.mu.RLock()
	defer l.mu.RUnlock()

	// Случай пустого списка
	if l.length == int64(0) {
		fmt.Printf("[]\n")
		return
	}

	fmt.Printf("[")
	currentNode := l.firstNode
	for ; currentNode.nextNode != nil; currentNode = currentNode.nextNode {
		fmt.Printf("{%d: %v}, ", currentNode.id, currentNode.value)
	}
	fmt.Printf("{%d: %v}]\n", currentNode.id, currentNode.value)
	return
}
