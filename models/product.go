package models

// Product is a catalog entry as the upstream backend lists it. The backend
// speaks Spanish field names; they are the wire contract and are kept as-is.
type Product struct {
	IDProducto    int     `json:"id_producto"`
	Nombre        string  `json:"nombre"`
	SKU           string  `json:"sku,omitempty"`
	Categoria     string  `json:"categoria"`
	Precio        string  `json:"precio"`
	OriginalPrice string  `json:"originalPrice,omitempty"`
	Imagen        string  `json:"imagen"`
	Stock         int     `json:"stock,omitempty"`
	Estado        string  `json:"estado,omitempty"`
	IsNew         bool    `json:"isNew,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	Reviews       int     `json:"reviews,omitempty"`
}

// ProductDetail is the richer shape served by GET /productos/{id}.
type ProductDetail struct {
	ID            int      `json:"id"`
	IDProducto    int      `json:"id_producto"`
	Nombre        string   `json:"nombre"`
	Precio        string   `json:"precio"`
	OriginalPrice string   `json:"original_price"`
	Category      string   `json:"category"`
	Imagen        string   `json:"imagen"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Sizes         []int    `json:"sizes"`
	Colors        []string `json:"colors"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Stock         int      `json:"stock"`
}

// PopularProduct is the compact shape used by the popular and audience feeds.
type PopularProduct struct {
	ID    int     `json:"id"`
	Image string  `json:"image"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// NewProduct is the admin create payload for POST /guardarProductos.
type NewProduct struct {
	SKU           string   `json:"sku"`
	Nombre        string   `json:"nombre"`
	Descripcion   string   `json:"descripcion"`
	Categoria     string   `json:"categoria"`
	Precio        string   `json:"precio"`
	Stock         int      `json:"stock"`
	Imagen        string   `json:"imagen"`
	Features      []string `json:"features"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	FechaCreacion string   `json:"fecha_creacion"`
}
