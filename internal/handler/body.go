package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"go-produtos-api/internal/model"
	"go-produtos-api/pkg/apierror"
)

const maxBodyBytes = 1 << 20

const msgInvalidBody = "Corpo da requisição inválido."

// Bodies arrive either as JSON or as HTML form posts. Fields missing from
// either encoding stay nil.

func isFormRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data"
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apierror.BadRequest(msgInvalidBody, err)
	}
	return nil
}

func parseForm(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		err = r.ParseMultipartForm(maxBodyBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return nil, apierror.BadRequest(msgInvalidBody, err)
	}

	return r.PostForm, nil
}

func formString(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}
	v := values.Get(key)
	return &v
}

func formPrice(values url.Values, key string) (*model.Price, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}

	v, err := model.ParsePrice(raw)
	if err != nil {
		return nil, apierror.BadRequest(msgInvalidBody, err)
	}
	return &v, nil
}

func decodeProduct(w http.ResponseWriter, r *http.Request) (model.ProductRequest, error) {
	var req model.ProductRequest

	if !isFormRequest(r) {
		err := decodeJSON(w, r, &req)
		return req, err
	}

	values, err := parseForm(w, r)
	if err != nil {
		return req, err
	}

	req.Descricao = formString(values, "descricao")
	req.Marca = formString(values, "marca")
	req.Valor, err = formPrice(values, "valor")

	return req, err
}

func decodeRegister(w http.ResponseWriter, r *http.Request) (model.RegisterRequest, error) {
	var req model.RegisterRequest

	if !isFormRequest(r) {
		err := decodeJSON(w, r, &req)
		return req, err
	}

	values, err := parseForm(w, r)
	if err != nil {
		return req, err
	}

	req.Nome = formString(values, "nome")
	req.Login = values.Get("login")
	req.Senha = values.Get("senha")
	req.Email = formString(values, "email")

	return req, nil
}

func decodeLogin(w http.ResponseWriter, r *http.Request) (model.LoginRequest, error) {
	var req model.LoginRequest

	if !isFormRequest(r) {
		err := decodeJSON(w, r, &req)
		return req, err
	}

	values, err := parseForm(w, r)
	if err != nil {
		return req, err
	}

	req.Login = values.Get("login")
	req.Senha = values.Get("senha")

	return req, nil
}
