package model

// Product mirrors a row of the produto table. Absent fields are stored as NULL.
type Product struct {
	ID        int64    `json:"id"`
	Descricao *string  `json:"descricao"`
	Valor     *float64 `json:"valor"`
	Marca     *string  `json:"marca"`
}

type ProductInput struct {
	Descricao *string
	Valor     *float64
	Marca     *string
}
