package dto

type GoalRequest struct {
	Titulo      string  `json:"titulo"`
	Descricao   *string `json:"descricao"`
	ValorMeta   float64 `json:"valor_meta"`
	ValorAtual  float64 `json:"valor_atual"`
	DataInicio  *string `json:"data_inicio"`
	DataFim     *string `json:"data_fim"`
	CategoriaID *string `json:"categoria_id"`
	Status      string  `json:"status"`
}

type GoalAddRequest struct {
	Valor float64 `json:"valor"`
}

type GoalResponse struct {
	ID            string  `json:"id"`
	Titulo        string  `json:"titulo"`
	Descricao     *string `json:"descricao"`
	ValorMeta     float64 `json:"valor_meta"`
	ValorAtual    float64 `json:"valor_atual"`
	Progresso     float64 `json:"progresso"`
	DataInicio    *string `json:"data_inicio"`
	DataFim       *string `json:"data_fim"`
	CategoriaID   *string `json:"categoria_id"`
	CategoriaNome *string `json:"categoria_nome"`
	CategoriaCor  *string `json:"categoria_cor"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}
