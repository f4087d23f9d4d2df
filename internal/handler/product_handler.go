package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go-produtos-api/internal/model"
)

type productRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	Create(ctx context.Context, in model.ProductInput) (int64, error)
	Update(ctx context.Context, id int64, in model.ProductInput) error
	Delete(ctx context.Context, id int64) error
}

// ProductHandler serves the produto table. Each operation is a single query.
type ProductHandler struct {
	products productRepository
}

func NewProductHandler(products productRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		writeStorageError(w, r, "Erro ao recuperar produtos", err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	const notFound = "Produto não encontrado!"

	id, ok := productID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, notFound)
		return
	}

	product, err := h.products.FindByID(r.Context(), id)
	if errors.Is(err, model.ErrProductNotFound) {
		writeMessage(w, http.StatusNotFound, notFound)
		return
	}
	if err != nil {
		writeStorageError(w, r, "Erro ao recuperar produto", err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	req, err := decodeProduct(w, r)
	if err != nil {
		writeRequestError(w, r, err)
		return
	}

	if _, err := h.products.Create(r.Context(), req.Input()); err != nil {
		writeStorageError(w, r, "Erro ao incluir produto", err)
		return
	}

	writeMessage(w, http.StatusCreated, "Produto incluído com sucesso!")
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	const notFound = "Produto não encontrado para alteração."

	id, ok := productID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, notFound)
		return
	}

	req, err := decodeProduct(w, r)
	if err != nil {
		writeRequestError(w, r, err)
		return
	}

	err = h.products.Update(r.Context(), id, req.Input())
	if errors.Is(err, model.ErrProductNotFound) {
		writeMessage(w, http.StatusNotFound, notFound)
		return
	}
	if err != nil {
		writeStorageError(w, r, "Erro na alteração", err)
		return
	}

	writeMessage(w, http.StatusOK, "Produto alterado com sucesso!")
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const notFound = "Produto não encontrado para exclusão."

	id, ok := productID(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, notFound)
		return
	}

	err := h.products.Delete(r.Context(), id)
	if errors.Is(err, model.ErrProductNotFound) {
		writeMessage(w, http.StatusNotFound, notFound)
		return
	}
	if err != nil {
		writeStorageError(w, r, "Erro na exclusão", err)
		return
	}

	writeMessage(w, http.StatusOK, "Produto excluído com sucesso!")
}

// productID reports false for ids that cannot match any row.
func productID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
