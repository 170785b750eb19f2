package storage

import "errors"

// ErrMismatchType возвращается при попытке добавить в хранилище элемент,
// тип которого не совпадает с типом уже хранящихся элементов
var ErrMismatchType = errors.New("mismatch type of value")

// Storage представляет собой интерфейс хранилища элементов.
// Реализуется односвязным списком (list.List) и таблицей (mp.Map).
type Storage interface {
	// Len возвращает количество элементов в хранилище
	Len() int64
	// Add добавляет элемент в конец хранилища, возвращает его идентификатор
	Add(value any) (int64, error)
	// PushFront добавляет элемент в начало хранилища, возвращает его идентификатор.
	// Для хранилищ без порядка элементов эквивалентен Add
	PushFront(value any) (int64, error)
	// RemoveByID удаляет элемент по уникальному идентификатору
	RemoveByID(id int64)
	// RemoveByValue удаляет первый встретившийся элемент с данным значением
	RemoveByValue(value any)
	// RemoveAllByValue удаляет все элементы с данным значением
	RemoveAllByValue(value any)
	// GetByID возвращает значение элемента с данным идентификатором
	GetByID(id int64) (value any, ok bool)
	// GetByValue возвращает идентификатор первого элемента с данным значением
	GetByValue(value any) (id int64, ok bool)
	// GetAllByValue возвращает идентификаторы всех элементов с данным значением
	GetAllByValue(value any) (ids []int64, ok bool)
	// UpdateByID обновляет значение элемента по идентификатору
	UpdateByID(id int64, value any) (bool, error)
	// GetAll возвращает все элементы хранилища в виде map[int64]any
	GetAll() (map[int64]any, bool)
	// Clear удаляет все элементы из хранилища
	Clear()
	// Print выводит хранилище в консоль
	Print()
}
