package core

// Positions of the product fields in a CSV row.
const (
	colID = iota
	colName
	colDescription
	colCategoryID
	colPrice
	colStockQuantity
	colImageURL
	colCreatedAt
	colUpdatedAt
)

// Columns lists the product fields in CSV order. Its length is the exact
// number of fields every data row must have.
var Columns = []FieldSpec{
	colID:            {Name: "ID", Width: 2},
	colName:          {Name: "Name", Width: 20, Truncate: true},
	colDescription:   {Name: "Description", Width: 25, Truncate: true},
	colCategoryID:    {Name: "Category", Width: 9},
	colPrice:         {Name: "Price", Width: 7},
	colStockQuantity: {Name: "Stock", Width: 5},
	colImageURL:      {Name: "Image URL", Width: 30, Truncate: true},
	colCreatedAt:     {Name: "Created", Width: 10},
	colUpdatedAt:     {Name: "Updated", Width: 10},
}
