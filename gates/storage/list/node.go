package list

// node представляет собой узел односвязного списка.
// Узлом владеет ровно один владелец: либо голова списка (List.firstNode),
// либо поле nextNode его предшественника. Цепочка ациклична,
// ни на один узел не указывает более одного предшественника.
type node struct {
	id       int64 // Уникальный идентификатор узла, может не совпадать с порядковым номером (индексом)
	value    any
	nextNode *node
}

// newNode создает новый узел без преемника и учитывает его в счетчике аллокаций.
// Сбой аллокации не обрабатывается: рантайм аварийно завершает программу,
// восстановление не предусмотрено
func (l *List) newNode(id int64, value any) *node {
	l.allocated++
	return &node{id: id, value: value}
}

// release освобождает узел: разрывает связь с преемником и учитывает
// освобождение в счетчике. Вызывается ровно один раз для каждого узла,
// когда его единственный владелец отдает владение
func (l *List) release(n *node) {
	n.nextNode = nil
	if l.free != nil {
		l.free(n.value)
	}
	l.released++
}
