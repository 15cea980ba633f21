package store

// The cart store is the single source of truth for a session's cart contents
// and panel visibility. All mutations are intents applied by a pure reducer;
// intents flow through a queue consumed by one goroutine, so every transition
// is atomic with respect to the next and observers never see a half-applied
// state.

// LineItem is one product entry in the cart. Price stays a decimal string
// exactly as the catalog serves it; it is only parsed when totals are
// computed.
type LineItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size,omitempty"`
}

// State holds the cart line items in insertion order plus the panel
// visibility flag.
type State struct {
	Items  []LineItem `json:"items"`
	IsOpen bool       `json:"is_open"`
}

type IntentType string

const (
	AddItem        IntentType = "ADD_ITEM"
	RemoveItem     IntentType = "REMOVE_ITEM"
	UpdateQuantity IntentType = "UPDATE_QUANTITY"
	ToggleCart     IntentType = "TOGGLE_CART"
	ClearCart      IntentType = "CLEAR_CART"
)

// Intent is a named request to mutate cart state. Which fields are read
// depends on Type: AddItem reads Item, RemoveItem reads ID, UpdateQuantity
// reads ID and Quantity.
type Intent struct {
	Type     IntentType
	Item     LineItem
	ID       int
	Quantity int
}

type dispatch struct {
	intent Intent
	reply  chan State
}

// Cart serializes intents for one session through its queue goroutine.
type Cart struct {
	queue chan dispatch
	reads chan chan State
	done  chan struct{}
}

func NewCart() *Cart {
	c := &Cart{
		queue: make(chan dispatch),
		reads: make(chan chan State),
		done:  make(chan struct{}),
	}
	go c.run()
	return c
}

func (c *Cart) run() {
	state := State{Items: []LineItem{}}
	for {
		select {
		case d := <-c.queue:
			state = reduce(state, d.intent)
			d.reply <- snapshot(state)
		case r := <-c.reads:
			r <- snapshot(state)
		case <-c.done:
			return
		}
	}
}

// Dispatch applies an intent and returns the resulting state. It does not
// return until the reducer has run, so a caller observing the return value
// sees its own write.
func (c *Cart) Dispatch(in Intent) State {
	reply := make(chan State, 1)
	select {
	case c.queue <- dispatch{intent: in, reply: reply}:
		return <-reply
	case <-c.done:
		return State{Items: []LineItem{}}
	}
}

// State returns a copy of the current state.
func (c *Cart) State() State {
	reply := make(chan State, 1)
	select {
	case c.reads <- reply:
		return <-reply
	case <-c.done:
		return State{Items: []LineItem{}}
	}
}

// Close stops the queue goroutine. Dispatch and State on a closed cart
// return an empty state.
func (c *Cart) Close() {
	select {
	case <-c.done:
	default:
		close(c.done)
	}
}

// reduce maps (state, intent) to the next state. It never stores a duplicate
// product id and never keeps an item whose quantity would be below one:
// AddItem merges by id, and the quantity floor is enforced by callers issuing
// RemoveItem instead of a sub-one UpdateQuantity.
func reduce(s State, in Intent) State {
	switch in.Type {
	case AddItem:
		for i, item := range s.Items {
			if item.ID == in.Item.ID {
				items := append([]LineItem(nil), s.Items...)
				items[i].Quantity += in.Item.Quantity
				s.Items = items
				return s
			}
		}
		s.Items = append(append([]LineItem(nil), s.Items...), in.Item)
		return s

	case RemoveItem:
		items := make([]LineItem, 0, len(s.Items))
		for _, item := range s.Items {
			if item.ID != in.ID {
				items = append(items, item)
			}
		}
		s.Items = items
		return s

	case UpdateQuantity:
		items := append([]LineItem(nil), s.Items...)
		for i := range items {
			if items[i].ID == in.ID {
				items[i].Quantity = in.Quantity
				break
			}
		}
		s.Items = items
		return s

	case ToggleCart:
		s.IsOpen = !s.IsOpen
		return s

	case ClearCart:
		s.Items = []LineItem{}
		return s
	}
	return s
}

func snapshot(s State) State {
	s.Items = append([]LineItem(nil), s.Items...)
	return s
}
