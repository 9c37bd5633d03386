package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"expense_tracker/internal/models"
	"expense_tracker/internal/service"
)

func TestExpenditureHandlers_ListAndCreate(t *testing.T) {
	expenditures := &mockExpenditures{
		listOut: []models.Expenditure{
			{ID: recordID, Category: "transport", NameOfItem: "bus ticket", EstimatedAmount: 3.50},
		},
		createOut: models.Expenditure{ID: recordID},
	}
	_, s := newFinanceRouter(&mockIncomes{}, expenditures)
	r := newTestRouter(s)

	w := doJSON(r, http.MethodGet, "/user/expenditure", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d, body=%s", w.Code, w.Body.String())
	}
	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(list) != 1 || list[0]["nameOfItem"] != "bus ticket" || list[0]["estimatedAmount"] != 3.50 {
		t.Fatalf("unexpected list payload: %v", list)
	}

	w = doJSON(r, http.MethodPost, "/user/expenditure",
		`{"category":"transport","nameOfItem":"bus ticket","estimatedAmount":3.50}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["message"] != "new expenditure added" {
		t.Fatalf("unexpected create message: %q", m["message"])
	}
	if expenditures.lastCreate.Category != "transport" || expenditures.lastCreate.EstimatedAmount != 3.50 {
		t.Fatalf("input not passed through: %+v", expenditures.lastCreate)
	}
}

func TestExpenditureHandlers_PartialUpdateAndDelete(t *testing.T) {
	expenditures := &mockExpenditures{
		updateOut: models.Expenditure{ID: recordID, Category: "commute", NameOfItem: "bus ticket", EstimatedAmount: 3.50},
	}
	_, s := newFinanceRouter(&mockIncomes{}, expenditures)
	r := newTestRouter(s)

	w := doJSON(r, http.MethodPut, "/user/expenditure/"+recordID, `{"category":"commute"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status=%d, body=%s", w.Code, w.Body.String())
	}
	if expenditures.lastUpdate.Category == nil || *expenditures.lastUpdate.Category != "commute" {
		t.Fatalf("category not passed: %+v", expenditures.lastUpdate)
	}
	if expenditures.lastUpdate.NameOfItem != nil || expenditures.lastUpdate.EstimatedAmount != nil {
		t.Fatalf("absent fields should stay nil: %+v", expenditures.lastUpdate)
	}

	w = doJSON(r, http.MethodDelete, "/user/expenditure/"+recordID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["message"] != "expenditure deleted successfully" {
		t.Fatalf("unexpected delete message: %q", m["message"])
	}
}

func TestExpenditureHandlers_NotFound(t *testing.T) {
	expenditures := &mockExpenditures{deleteErr: service.ErrNotFound}
	_, s := newFinanceRouter(&mockIncomes{}, expenditures)
	r := newTestRouter(s)

	w := doJSON(r, http.MethodDelete, "/user/expenditure/"+recordID, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d (body=%s)", w.Code, w.Body.String())
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["detail"] != "Not found." {
		t.Fatalf("unexpected detail: %q", m["detail"])
	}
}
