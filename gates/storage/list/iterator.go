package list

// Iterator представляет собой невладеющий указатель для обхода цепочки.
// Обход только читает узлы и не влияет на владение: освобождать узлы
// через итератор нельзя. Итератор не защищен от параллельной записи в список,
// его нужно использовать до изменения списка или получать заново через Traverse
type Iterator struct {
	currentNode *node
}

// Traverse возвращает новый итератор на голову цепочки.
// Обход можно начинать заново в любой момент, повторный Traverse
// по неизменному списку даст ту же последовательность значений
func (l *List) Traverse() *Iterator {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return &Iterator{currentNode: l.firstNode}
}

// Next возвращает значение текущего узла и сдвигает итератор к преемнику.
// Когда цепочка закончилась, возвращает nil и false
func (it *Iterator) Next() (value any, ok bool) {
	if it.currentNode == nil {
		return nil, false
	}
	value = it.currentNode.value
	it.currentNode = it.currentNode.nextNode
	return value, true
}
