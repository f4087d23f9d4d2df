package model

type ProductRequest struct {
	Descricao *string `json:"descricao"`
	Valor     *Price  `json:"valor"`
	Marca     *string `json:"marca"`
}

func (r ProductRequest) Input() ProductInput {
	return ProductInput{Descricao: r.Descricao, Valor: r.Valor.Float64(), Marca: r.Marca}
}

type RegisterRequest struct {
	Nome  *string `json:"nome"`
	Login string  `json:"login"`
	Senha string  `json:"senha"`
	Email *string `json:"email"`
}

type LoginRequest struct {
	Login string `json:"login"`
	Senha string `json:"senha"`
}
