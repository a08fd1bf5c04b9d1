package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jean-devbr/Atendimento-lanche/internal/adapter/http/handlers/mocks"
	"github.com/jean-devbr/Atendimento-lanche/internal/domain/entities"
	"github.com/jean-devbr/Atendimento-lanche/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMenuHandler_ListMenu(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("lists everything by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMenuUseCase(ctrl)
		h := NewMenuHandler(uc)

		r := gin.New()
		r.GET("/v1/menu", h.ListMenu)

		uc.EXPECT().List(gomock.Any(), false).Return([]entities.MenuItem{{ID: "1", Name: "X-Burger"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/menu", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["name"] != "X-Burger" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("available filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMenuUseCase(ctrl)
		h := NewMenuHandler(uc)

		r := gin.New()
		r.GET("/v1/menu", h.ListMenu)

		uc.EXPECT().List(gomock.Any(), true).Return([]entities.MenuItem{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/menu?available=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMenuUseCase(ctrl)
		h := NewMenuHandler(uc)

		r := gin.New()
		r.GET("/v1/menu", h.ListMenu)

		uc.EXPECT().List(gomock.Any(), false).Return(nil, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/menu", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMenuHandler_CreateMenuItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMenuUseCase(ctrl)
		h := NewMenuHandler(uc)

		r := gin.New()
		r.POST("/v1/menu", h.CreateMenuItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/menu", bytes.NewBufferString(`{"price": 10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMenuUseCase(ctrl)
		h := NewMenuHandler(uc)

		r := gin.New()
		r.POST("/v1/menu", h.CreateMenuItem)

		uc.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(entities.MenuItem{})).DoAndReturn(
			func(_ context.Context, it entities.MenuItem) (entities.MenuItem, error) {
				it.ID = "generated"
				return it, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/menu", bytes.NewBufferString(`{"name":"Milkshake","price":14.9,"available":true}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "generated" || body["name"] != "Milkshake" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestMenuHandler_UpdateMenuItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMenuUseCase(ctrl)
		h := NewMenuHandler(uc)

		r := gin.New()
		r.PUT("/v1/menu/:id", h.UpdateMenuItem)

		uc.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.MenuItem{}, usecase.ErrMenuItemNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/menu/999", bytes.NewBufferString(`{"name":"Fantasma"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success uses path id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMenuUseCase(ctrl)
		h := NewMenuHandler(uc)

		r := gin.New()
		r.PUT("/v1/menu/:id", h.UpdateMenuItem)

		uc.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.MenuItem{})).DoAndReturn(
			func(_ context.Context, it entities.MenuItem) (entities.MenuItem, error) {
				if it.ID != "2" {
					t.Fatalf("expected path id 2, got %q", it.ID)
				}
				return it, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/v1/menu/2", bytes.NewBufferString(`{"name":"X-Bacon Duplo","price":27.9}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMenuHandler_DeleteMenuItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMenuUseCase(ctrl)
	h := NewMenuHandler(uc)

	r := gin.New()
	r.DELETE("/v1/menu/:id", h.DeleteMenuItem)

	uc.EXPECT().Delete(gomock.Any(), "2").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/menu/2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestMapMenuError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidMenuItemID, http.StatusBadRequest},
		{usecase.ErrMenuItemNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		got := mapMenuError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
