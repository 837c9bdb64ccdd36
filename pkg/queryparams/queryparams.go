package queryparams

// Liste sorguları için varsayılanlar ve üst sınırlar.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultSortBy  = "created_at"
	DefaultOrderBy = "desc"
)

// ListParams liste uçlarında kullanılan ortak sorgu parametreleri.
type ListParams struct {
	Name    string `query:"name"`   // İsme göre filtre (contains)
	Status  string `query:"status"` // Duruma göre filtre
	SortBy  string `query:"sortBy"`
	OrderBy string `query:"orderBy"`
	Page    int    `query:"page"`
	PerPage int    `query:"perPage"`
}

// Normalize geçersiz sayfa/sıralama değerlerini varsayılanlara çeker.
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.SortBy == "" {
		p.SortBy = DefaultSortBy
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
}

// CalculateOffset sayfalama için offset hesaplar.
func (p *ListParams) CalculateOffset() int {
	page := p.Page
	if page < 1 {
		page = DefaultPage
	}
	perPage := p.PerPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return (page - 1) * perPage
}

// PaginatedResult sayfalanmış liste yanıtı.
type PaginatedResult struct {
	Data       interface{} `json:"data"`
	Page       int         `json:"page"`
	PerPage    int         `json:"perPage"`
	TotalCount int64       `json:"totalCount"`
	TotalPages int         `json:"totalPages"`
}

// NewPaginatedResult toplam sayıya göre sayfa bilgisini doldurur.
func NewPaginatedResult(data interface{}, params ListParams, totalCount int64) *PaginatedResult {
	perPage := params.PerPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	totalPages := int((totalCount + int64(perPage) - 1) / int64(perPage))
	return &PaginatedResult{
		Data:       data,
		Page:       params.Page,
		PerPage:    perPage,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
