package listService

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"listServer/gates/storage/list"
	"listServer/gates/storage/mp"
	"listServer/models/dto"
)

// doRequest прогоняет запрос через роутер сервиса и разбирает ответ
func doRequest(t *testing.T, ls *ListService, method, path, body string) *dto.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	ls.server.Handler.ServeHTTP(rec, req)

	resp := &dto.Response{}
	if err := json.NewDecoder(rec.Body).Decode(resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestCreateTraverseClear(t *testing.T) {
	ls := NewListService(":0", list.NewList(1))

	// Вставка 2, 13, 5, 3 в начало цепочки
	for _, body := range []string{
		`{"value": 2}`, `{"value": 13}`, `{"value": 5}`, `{"value": 3}`,
	} {
		resp := doRequest(t, ls, http.MethodPost, "/create", body)
		if resp.Result != "OK" {
			t.Fatalf("create %s: %s", body, resp.Error)
		}
	}

	resp := doRequest(t, ls, http.MethodGet, "/traverse", "")
	if resp.Result != "OK" {
		t.Fatalf("traverse: %s", resp.Error)
	}
	chain := &dto.Chain{}
	if err := json.Unmarshal(resp.Data, chain); err != nil {
		t.Fatalf("unmarshal chain: %v", err)
	}
	if chain.Chain != "3 -> 5 -> 13 -> 2 -> null" {
		t.Fatalf("unexpected chain: %q", chain.Chain)
	}

	resp = doRequest(t, ls, http.MethodPost, "/clear", "")
	if resp.Result != "OK" {
		t.Fatalf("clear: %s", resp.Error)
	}

	resp = doRequest(t, ls, http.MethodGet, "/traverse", "")
	chain = &dto.Chain{}
	if err := json.Unmarshal(resp.Data, chain); err != nil {
		t.Fatalf("unmarshal chain after clear: %v", err)
	}
	if chain.Chain != "null" {
		t.Fatalf("chain after clear: %q", chain.Chain)
	}
}

func TestCreateGetUpdateDelete(t *testing.T) {
	ls := NewListService(":0", list.NewList(1))

	resp := doRequest(t, ls, http.MethodPost, "/create", `{"value": 42}`)
	if resp.Result != "OK" {
		t.Fatalf("create: %s", resp.Error)
	}
	var created map[string]int64
	if err := json.Unmarshal(resp.Data, &created); err != nil {
		t.Fatalf("unmarshal create data: %v", err)
	}
	id := created["id"]
	if id < 1 {
		t.Fatalf("unexpected id: %d", id)
	}

	resp = doRequest(t, ls, http.MethodPost, "/get", `{"id": 1}`)
	if resp.Result != "OK" {
		t.Fatalf("get: %s", resp.Error)
	}
	element := &dto.Element{}
	if err := json.Unmarshal(resp.Data, element); err != nil {
		t.Fatalf("unmarshal element: %v", err)
	}
	if element.Value == nil || *element.Value != 42 {
		t.Fatalf("unexpected element: %+v", element)
	}

	resp = doRequest(t, ls, http.MethodPost, "/update", `{"id": 1, "value": 43}`)
	if resp.Result != "OK" {
		t.Fatalf("update: %s", resp.Error)
	}

	resp = doRequest(t, ls, http.MethodGet, "/get-all", "")
	if resp.Result != "OK" {
		t.Fatalf("get-all: %s", resp.Error)
	}
	var all []*dto.Element
	if err := json.Unmarshal(resp.Data, &all); err != nil {
		t.Fatalf("unmarshal all elements: %v", err)
	}
	if len(all) != 1 || all[0].Value == nil || *all[0].Value != 43 {
		t.Fatalf("unexpected elements: %+v", all)
	}

	resp = doRequest(t, ls, http.MethodPost, "/delete", `{"id": 1}`)
	if resp.Result != "OK" {
		t.Fatalf("delete: %s", resp.Error)
	}

	// Повторное удаление того же элемента является ошибкой
	resp = doRequest(t, ls, http.MethodPost, "/delete", `{"id": 1}`)
	if resp.Result != "ERROR" {
		t.Fatalf("delete of missing element succeeded")
	}
}

func TestInvalidRequests(t *testing.T) {
	ls := NewListService(":0", list.NewList(1))

	// Неверный метод
	resp := doRequest(t, ls, http.MethodGet, "/create", "")
	if resp.Result != "ERROR" || !strings.Contains(resp.Error, "invalid request method") {
		t.Fatalf("unexpected response for wrong method: %+v", resp)
	}

	// Невалидный JSON
	resp = doRequest(t, ls, http.MethodPost, "/create", `{"value":`)
	if resp.Result != "ERROR" || !strings.Contains(resp.Error, "cannot unmarshal") {
		t.Fatalf("unexpected response for bad json: %+v", resp)
	}

	// Отсутствует значение
	resp = doRequest(t, ls, http.MethodPost, "/create", `{}`)
	if resp.Result != "ERROR" || !strings.Contains(resp.Error, "required data is missing") {
		t.Fatalf("unexpected response for missing value: %+v", resp)
	}

	// Невалидный идентификатор
	resp = doRequest(t, ls, http.MethodPost, "/get", `{"id": 0}`)
	if resp.Result != "ERROR" || !strings.Contains(resp.Error, "invalid element id") {
		t.Fatalf("unexpected response for bad id: %+v", resp)
	}

	// Получение несуществующего элемента
	resp = doRequest(t, ls, http.MethodPost, "/get", `{"id": 5}`)
	if resp.Result != "ERROR" || !strings.Contains(resp.Error, "cannot find element") {
		t.Fatalf("unexpected response for missing element: %+v", resp)
	}
}

func TestTraverseWithMapBackend(t *testing.T) {
	// Таблица не хранит порядок элементов, обход для нее не определен
	ls := NewListService(":0", mp.NewMap(1))

	resp := doRequest(t, ls, http.MethodPost, "/create", `{"value": 1}`)
	if resp.Result != "OK" {
		t.Fatalf("create: %s", resp.Error)
	}

	resp = doRequest(t, ls, http.MethodGet, "/traverse", "")
	if resp.Result != "ERROR" || !strings.Contains(resp.Error, "chain order") {
		t.Fatalf("unexpected response for map traverse: %+v", resp)
	}
}
