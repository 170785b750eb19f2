package dto

// Element представляет собой элемент хранилища в запросах и ответах сервиса.
// Value объявлен указателем, чтобы отличать отсутствующее поле от нулевого значения
type Element struct {
	ID    int64  `json:"id"`
	Value *int64 `json:"value,omitempty"`
}

func NewElement() *Element {
	return &Element{ID: -1}
}

// Chain представляет собой строковое представление цепочки для ответа /traverse
type Chain struct {
	Chain string `json:"chain"`
}
