package listService

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/rs/zerolog/log"

	"listServer/gates/storage"
	"listServer/models/dto"
	"listServer/pkg"
)

type ListService struct {
	server  http.Server
	storage storage.Storage
}

func NewListService(addr string, storage storage.Storage) (service *ListService) {
	service = new(ListService)
	service.server = http.Server{}
	router := http.NewServeMux()
	router.HandleFunc("/create", service.handleCreateElement)
	router.HandleFunc("/get", service.handleGetElement)
	router.HandleFunc("/update", service.handleUpdateElement)
	router.HandleFunc("/delete", service.handleDeleteElementByID)
	router.HandleFunc("/get-all", service.handleGetAllElements)
	router.HandleFunc("/traverse", service.handleTraverse)
	router.HandleFunc("/clear", service.handleClear)
	service.server.Handler = router
	service.server.Addr = addr
	service.storage = storage
	return service
}

// Start запускает сервис списка
func (ls *ListService) Start() {
	wErr := pkg.NewWrappedError("(ls *ListService) Start()")

	log.Info().Str("addr", ls.server.Addr).Msg("listening")
	err := ls.server.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		wErr.Specify(err, "ls.server.ListenAndServe()").LogError()
		return
	}
	wErr.LogMsg("Server closed")
	return
}

func (ls *ListService) Close() error {
	return ls.server.Close()
}

// handleCreateElement обрабатывает запрос на добавление элемента в начало хранилища
/*
Запрос должен быть с методом POST и с содержимым в формате JSON следующего вида:
{"value": 13}

Возвращает клиенту ответ с содержимым в формате JSON следующего вида:
{"result": "OK", "data": {"id": 1}, "error": ""}

В случае ошибки:
{"result": "ERROR", "data": null, "error": "error description"}
*/
func (ls *ListService) handleCreateElement(w http.ResponseWriter, req *http.Request) {
	setHttpHeaders(w)

	wErr := pkg.NewWrappedError("(ls *ListService) handleCreateElement()")

	// Создание ответа
	resp := &dto.Response{}
	defer writeResponseContent(w, resp, wErr)

	// Проверка метода
	if req.Method != http.MethodPost {
		messageString := fmt.Sprintf("invalid request method: '%s' (need '%s')", req.Method, http.MethodPost)
		wErr.LogMsg(messageString)
		resp.Update("ERROR", nil, messageString)
		return
	}

	// Парсинг запроса
	creatableElement, errorString := parseElementRequest(req, wErr)
	if errorString != "" {
		resp.Update("ERROR", nil, errorString)
		return
	}

	// Проверка наличия необходимых данных в запросе
	if creatableElement.Value == nil {
		err := errors.New("required data is missing")
		resp.Update("ERROR", nil, err.Error())
		wErr.LogMsg(fmt.Sprintf("%s: {value: nil}", err.Error()))
		return
	}

	// Вставка элемента в начало хранилища
	id, err := ls.storage.PushFront(*creatableElement.Value)
	if err != nil {
		resp.Update("ERROR", nil, errors.New("cannot add element: "+err.Error()).Error())
		wErr.Specify(err, "ls.storage.PushFront(*creatableElement.Value)").LogError()
		return
	}

	// Формирование содержимого для ответа
	idMap := map[string]int64{
		"id": id,
	}
	idJson, err := json.Marshal(idMap)
	if err != nil {
		resp.Update("ERROR", nil, err.Error())
		wErr.Specify(err, "json.Marshal(idMap)").LogError()
		return
	}

	resp.Update("OK", idJson, "")
	wErr.LogMsg(fmt.Sprintf("OK - create: {id: %d}", id))
}

// handleGetElement обрабатывает запрос на получение одного элемента
/*
Запрос должен быть с методом POST и с содержимым в формате JSON следующего вида:
{"id": 1}

Возвращает клиенту ответ с содержимым в формате JSON следующего вида:
{"result": "OK", "data": {"id": 1, "value": 13}, "error": ""}

В случае ошибки:
{"result": "ERROR", "data": null, "error": "error description"}
*/
func (ls *ListService) handleGetElement(w http.ResponseWriter, req *http.Request) {
	setHttpHeaders(w)

	wErr := pkg.NewWrappedError("(ls *ListService) handleGetElement()")

	// Создание ответа
	resp := &dto.Response{}
	defer writeResponseContent(w, resp, wErr)

	// Проверка метода
	if req.Method != http.MethodPost {
		messageString := fmt.Sprintf("invalid request method: '%s' (need '%s')", req.Method, http.MethodPost)
		wErr.LogMsg(messageString)
		resp.Update("ERROR", nil, messageString)
		return
	}

	// Парсинг запроса
	gettableElement, errorString := parseElementRequest(req, wErr)
	if errorString != "" {
		resp.Update("ERROR", nil, errorString)
		return
	}

	// Проверка валидности полученного ID
	if gettableElement.ID < 1 {
		err := errors.New("invalid element id")
		resp.Update("ERROR", nil, err.Error())
		wErr.LogMsg(fmt.Sprintf("%s %d", err.Error(), gettableElement.ID))
		return
	}

	// Получение нужного элемента по ID
	foundValueAny, status := ls.storage.GetByID(gettableElement.ID)
	if !status {
		err := fmt.Errorf("cannot find element with id %d", gettableElement.ID)
		resp.Update("ERROR", nil, err.Error())
		wErr.LogMsg(err.Error())
		return
	}
	foundValue, ok := foundValueAny.(int64)
	if !ok {
		err := errors.New("cannot convert interface{} to int64")
		resp.Update("ERROR", nil, "internal server error")
		wErr.Specify(err, "foundValue, ok := foundValueAny.(int64)").LogError()
		return
	}
	foundElement := &dto.Element{ID: gettableElement.ID, Value: &foundValue}

	// Формирование содержимого для ответа
	elementJson, err := json.Marshal(foundElement)
	if err != nil {
		resp.Update("ERROR", nil, err.Error())
		return
	}
	resp.Update("OK", elementJson, "")
	wErr.LogMsg(fmt.Sprintf("OK - get: {id: %d}", gettableElement.ID))
}

// handleUpdateElement обрабатывает запрос на обновление элемента
/*
Запрос должен быть с методом POST и с содержимым в формате JSON следующего вида:
{"id": 1, "value": 42}

Возвращает клиенту ответ с содержимым в формате JSON следующего вида:
{"result": "OK", "data": null, "error": ""}

В случае ошибки: (например, элемент с таким ID не существует)
{"result": "ERROR", "data": null, "error": "error description"}
*/
func (ls *ListService) handleUpdateElement(w http.ResponseWriter, req *http.Request) {
	setHttpHeaders(w)

	wErr := pkg.NewWrappedError("(ls *ListService) handleUpdateElement()")

	// Создание ответа
	resp := &dto.Response{}
	defer writeResponseContent(w, resp, wErr)

	// Проверка метода
	if req.Method != http.MethodPost {
		messageString := fmt.Sprintf("invalid request method: '%s' (need '%s')", req.Method, http.MethodPost)
		wErr.LogMsg(messageString)
		resp.Update("ERROR", nil, messageString)
		return
	}

	// Парсинг запроса
	updatableElement, errorString := parseElementRequest(req, wErr)
	if errorString != "" {
		resp.Update("ERROR", nil, errorString)
		return
	}

	// Проверка наличия необходимых данных в запросе
	if updatableElement.Value == nil || updatableElement.ID < 1 {
		err := errors.New("required data is missing")
		resp.Update("ERROR", nil, err.Error())
		wErr.LogMsg(fmt.Sprintf("%s: {id: %d}", err.Error(), updatableElement.ID))
		return
	}

	// Обновление элемента
	ok, err := ls.storage.UpdateByID(updatableElement.ID, *updatableElement.Value)
	if err != nil {
		resp.Update("ERROR", nil, "internal server error")
		wErr.Specify(err, "ls.storage.UpdateByID(updatableElement.ID, *updatableElement.Value)").LogError()
		return
	}
	if !ok {
		messageString := fmt.Sprintf("cannot update non-existing element: %d", updatableElement.ID)
		resp.Update("ERROR", nil, messageString)
		wErr.LogMsg(messageString)
		return
	}

	resp.Update("OK", nil, "")
	wErr.LogMsg(fmt.Sprintf("OK - update: {id: %d}", updatableElement.ID))
}

// handleDeleteElementByID обрабатывает запрос на удаление элемента
/*
Запрос должен быть с методом POST и с содержимым в формате JSON следующего вида:
{"id": 1}

Возвращает клиенту ответ с содержимым в формате JSON следующего вида:
{"result": "OK", "data": null, "error": ""}

В случае ошибки: (например, удаление несуществующего элемента)
{"result": "ERROR", "data": null, "error": "error description"}
*/
func (ls *ListService) handleDeleteElementByID(w http.ResponseWriter, req *http.Request) {
	setHttpHeaders(w)

	wErr := pkg.NewWrappedError("(ls *ListService) handleDeleteElementByID()")

	// Создание ответа
	resp := &dto.Response{}
	defer writeResponseContent(w, resp, wErr)

	// Проверка метода
	if req.Method != http.MethodPost {
		messageString := fmt.Sprintf("invalid request method: '%s' (need '%s')", req.Method, http.MethodPost)
		wErr.LogMsg(messageString)
		resp.Update("ERROR", nil, messageString)
		return
	}

	// Парсинг запроса
	deletableElement, errorString := parseElementRequest(req, wErr)
	if errorString != "" {
		resp.Update("ERROR", nil, errorString)
		return
	}

	// Проверка наличия необходимых данных в запросе
	if deletableElement.ID < 1 {
		err := errors.New("invalid element id")
		resp.Update("ERROR", nil, err.Error())
		wErr.LogMsg(fmt.Sprintf("%s %d", err.Error(), deletableElement.ID))
		return
	}

	// Проверка наличия элемента с таким ID
	_, status := ls.storage.GetByID(deletableElement.ID)
	if !status {
		messageString := fmt.Sprintf("element with this ID doesn't exist: %d", deletableElement.ID)
		resp.Update("ERROR", nil, messageString)
		wErr.LogMsg(messageString)
		return
	}

	// Удаление элемента
	ls.storage.RemoveByID(deletableElement.ID)

	resp.Update("OK", nil, "")
	wErr.LogMsg(fmt.Sprintf("OK - delete: {id: %d}", deletableElement.ID))
}

// handleGetAllElements обрабатывает запрос на получение всех элементов
/*
Запрос должен быть с методом GET. Тело запроса игнорируется.

Возвращает клиенту ответ с содержимым в формате JSON следующего вида:
{"result": "OK", "data": [
{"id": 1, "value": 2},
{"id": 2, "value": 13}
], "error": ""}

В случае ошибки:
{"result": "ERROR", "data": null, "error": "error description"}
*/
func (ls *ListService) handleGetAllElements(w http.ResponseWriter, req *http.Request) {
	setHttpHeaders(w)

	wErr := pkg.NewWrappedError("(ls *ListService) handleGetAllElements()")

	// Создание ответа
	resp := &dto.Response{}
	defer writeResponseContent(w, resp, wErr)

	// Проверка метода
	if req.Method != http.MethodGet {
		messageString := fmt.Sprintf("invalid request method: '%s' (need '%s')", req.Method, http.MethodGet)
		wErr.LogMsg(messageString)
		resp.Update("ERROR", nil, messageString)
		return
	}

	// Тело запроса игнорируется, поэтому его парсинг не производится

	// Получение всех элементов
	allValuesMap, status := ls.storage.GetAll()
	if !status {
		messageString := "no elements found"
		resp.Update("ERROR", nil, messageString)
		wErr.LogMsg(messageString)
		return
	}

	// Преобразование из map[int64]interface{} в []*dto.Element
	allElements := make([]*dto.Element, 0, len(allValuesMap))
	for id, valueAny := range allValuesMap {
		value, ok := valueAny.(int64)
		if !ok {
			err := errors.New("cannot convert interface{} to int64")
			resp.Update("ERROR", nil, "internal server error")
			wErr.Specify(err, "value, ok := valueAny.(int64)").LogError()
			return
		}
		v := value
		allElements = append(allElements, &dto.Element{ID: id, Value: &v})
	}

	// Сортировка []*dto.Element по возрастанию ID
	sort.Slice(allElements, func(i, j int) bool {
		return allElements[i].ID < allElements[j].ID
	})

	// Формирование содержимого ответа в формате JSON
	allElementsJson, err := json.Marshal(allElements)
	if err != nil {
		errorString := fmt.Sprintf("cannot marshal all elements: %s", err)
		resp.Update("ERROR", nil, errorString)
		wErr.Specify(err, "json.Marshal(allElements)").LogError()
		return
	}

	resp.Update("OK", allElementsJson, "")
	wErr.LogMsg(fmt.Sprintf("OK - get-all: {count: %d}", len(allElements)))
}

// handleTraverse обрабатывает запрос на обход цепочки от головы к хвосту
/*
Запрос должен быть с методом GET. Тело запроса игнорируется.

Возвращает клиенту ответ с содержимым в формате JSON следующего вида:
{"result": "OK", "data": {"chain": "3 -> 5 -> 13 -> 2 -> null"}, "error": ""}

В случае ошибки: (например, хранилище не является цепочкой)
{"result": "ERROR", "data": null, "error": "error description"}
*/
func (ls *ListService) handleTraverse(w http.ResponseWriter, req *http.Request) {
	setHttpHeaders(w)

	wErr := pkg.NewWrappedError("(ls *ListService) handleTraverse()")

	// Создание ответа
	resp := &dto.Response{}
	defer writeResponseContent(w, resp, wErr)

	// Проверка метода
	if req.Method != http.MethodGet {
		messageString := fmt.Sprintf("invalid request method: '%s' (need '%s')", req.Method, http.MethodGet)
		wErr.LogMsg(messageString)
		resp.Update("ERROR", nil, messageString)
		return
	}

	// Обход возможен только для хранилища с порядком элементов
	chain, ok := ls.storage.(fmt.Stringer)
	if !ok {
		messageString := "storage does not keep a chain order"
		resp.Update("ERROR", nil, messageString)
		wErr.LogMsg(messageString)
		return
	}

	// Формирование содержимого для ответа
	chainJson, err := json.Marshal(&dto.Chain{Chain: chain.String()})
	if err != nil {
		resp.Update("ERROR", nil, err.Error())
		wErr.Specify(err, "json.Marshal(&dto.Chain{...})").LogError()
		return
	}

	resp.Update("OK", chainJson, "")
	wErr.LogMsg("OK - traverse")
}

// handleClear обрабатывает запрос на удаление всех элементов
/*
Запрос должен быть с методом POST. Тело запроса игнорируется.

Возвращает клиенту ответ с содержимым в формате JSON следующего вида:
{"result": "OK", "data": null, "error": ""}
*/
func (ls *ListService) handleClear(w http.ResponseWriter, req *http.Request) {
	setHttpHeaders(w)

	wErr := pkg.NewWrappedError("(ls *ListService) handleClear()")

	// Создание ответа
	resp := &dto.Response{}
	defer writeResponseContent(w, resp, wErr)

	// Проверка метода
	if req.Method != http.MethodPost {
		messageString := fmt.Sprintf("invalid request method: '%s' (need '%s')", req.Method, http.MethodPost)
		wErr.LogMsg(messageString)
		resp.Update("ERROR", nil, messageString)
		return
	}

	// Освобождение всей цепочки: каждый узел освобождается ровно один раз
	ls.storage.Clear()

	resp.Update("OK", nil, "")
	wErr.LogMsg("OK - clear")
}

// parseElementRequest читает тело запроса и разбирает его в dto.Element.
// При ошибке возвращает ее описание для ответа клиенту
func parseElementRequest(req *http.Request, wErr *pkg.WrappedError) (element *dto.Element, errorString string) {
	requestBytes, err := io.ReadAll(req.Body)
	if err != nil {
		errorString = fmt.Sprintf("cannot read request bytes: %s", err)
		wErr.Specify(err, "io.ReadAll(req.Body)").LogError()
		return nil, errorString
	}
	element = dto.NewElement()
	err = json.Unmarshal(requestBytes, element)
	if err != nil {
		errorString = fmt.Sprintf("cannot unmarshal request json: %s", err.Error())
		wErr.LogMsg(errorString)
		return nil, errorString
	}
	return element, ""
}

func writeResponseContent(w http.ResponseWriter, resp *dto.Response, wErr *pkg.WrappedError) {
	err := json.NewEncoder(w).Encode(resp)
	if err != nil {
		wErr.Specify(err, "json.NewEncoder(w).Encode(resp)").LogError()
		resp.Update("ERROR", nil, "internal server error")
		return
	}
}

func setHttpHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "*")
	w.Header().Set("Access-Control-Allow-Headers", "*")
	w.Header().Set("Content-Type", "application/json")
}
