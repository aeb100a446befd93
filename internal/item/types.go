package item

// --- Item Domain Model ---

// Item is the single stock record managed by the service.
type Item struct {
	ID          int64
	Name        string
	Price       float64
	Quantity    int64
	ReleaseYear int
}

// MinReleaseYear is the earliest accepted release year.
const MinReleaseYear = 1900

// --- UseCase Inputs ---

// Fields are pointers so that an absent field can be told apart from a zero value.
type CreateItemInput struct {
	ID          *int64
	Name        *string
	Price       *float64
	Quantity    *int64
	ReleaseYear *int
}

// ListItemsInput selects items whose name contains Query. When Paginate is
// set, Page (1-based) and Size select one page; a zero Size means the default.
type ListItemsInput struct {
	Paginate bool
	Page     int
	Size     int
	Query    string
}

type UpdateItemInput struct {
	ID          int64
	Name        *string
	Price       *float64
	Quantity    *int64
	ReleaseYear *int
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items []Item
	Total int
	Page  int
	Size  int
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item Item
}
