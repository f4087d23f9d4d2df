package handler

import "net/http"

const welcomeText = "Bem-vindo à API de produtos - trabalho03 <br>Para ter acesso aos dados, use os endpoints /api/produtos ou /seguranca/login"

func Welcome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(welcomeText))
}
