package dto

// PageRequest paginación para listados (query params pagina/limite).
type PageRequest struct {
	Pagina int `query:"pagina"`
	Limite int `query:"limite"`
}

// Normalizar aplica valores por defecto y topes.
func (p *PageRequest) Normalizar() {
	if p.Pagina <= 0 {
		p.Pagina = 1
	}
	if p.Limite <= 0 {
		p.Limite = 20
	}
	if p.Limite > 100 {
		p.Limite = 100
	}
}

// Offset convierte pagina/limite a offset SQL.
func (p PageRequest) Offset() int {
	return (p.Pagina - 1) * p.Limite
}

// Paginacion metadatos de página en respuestas de listados.
type Paginacion struct {
	Total        int `json:"total"`
	Pagina       int `json:"pagina"`
	Limite       int `json:"limite"`
	TotalPaginas int `json:"total_paginas"`
}

// NuevaPaginacion calcula los metadatos a partir del total y la página pedida.
func NuevaPaginacion(total int, page PageRequest) Paginacion {
	totalPaginas := 0
	if page.Limite > 0 {
		totalPaginas = (total + page.Limite - 1) / page.Limite
	}
	return Paginacion{
		Total:        total,
		Pagina:       page.Pagina,
		Limite:       page.Limite,
		TotalPaginas: totalPaginas,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
