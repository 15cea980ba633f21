package models

// SaleItem and SaleRequest form the POST /ventas body. Display-only cart
// fields (name, image, size) never reach the wire.
type SaleItem struct {
	IDProducto int `json:"id_producto"`
	Cantidad   int `json:"cantidad"`
}

type SaleRequest struct {
	IDCliente int        `json:"id_cliente"`
	Productos []SaleItem `json:"productos"`
}

// Order is an admin list entry from GET /listaOrdenes. The upstream view
// exposes capitalized column names.
type Order struct {
	OrderID  string `json:"Order_ID"`
	Customer string `json:"Customer"`
	Date     string `json:"Date"`
	Total    string `json:"Total"`
	Status   string `json:"Status"`
	Items    int    `json:"Items"`
}
