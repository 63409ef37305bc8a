package comparison_controller

import (
	"strconv"

	"github.com/Adarshk-afk/Bitehub/comparison"
	"github.com/Adarshk-afk/Bitehub/datasource"
	"github.com/Adarshk-afk/Bitehub/models"
	"github.com/gin-gonic/gin"
)

var (
	store  comparison.Store
	source datasource.Source
)

// Init injects the selection store and the catalog source.
func Init(s comparison.Store, src datasource.Source) {
	store = s
	source = src
}

// managerFor builds the selection manager for this request's session and
// restores its persisted state. Browsers that never sent a session id all
// share the "default" selection, which mirrors the single-browser scope
// the storefront was designed around.
func managerFor(c *gin.Context) *comparison.Manager {
	session := c.GetHeader("X-Session-ID")
	if session == "" {
		session = "default"
	}
	m := comparison.NewManager(store, "comparison:items:"+session, nil)
	m.Restore(c.Request.Context())
	return m
}

func parseProductID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// selectionPayload hydrates the selected ids into product snapshots,
// preserving selection order.
type selectionPayload struct {
	IDs      []int            `json:"ids"`
	Products []models.Product `json:"products"`
	Capacity int              `json:"capacity"`
}

func buildSelectionPayload(c *gin.Context, m *comparison.Manager) (selectionPayload, error) {
	ids := m.IDs()
	payload := selectionPayload{IDs: ids, Products: []models.Product{}, Capacity: comparison.Capacity}

	if len(ids) == 0 {
		return payload, nil
	}

	products, err := source.FetchAll(c.Request.Context())
	if err != nil {
		return payload, err
	}

	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			payload.Products = append(payload.Products, p)
		}
	}
	return payload, nil
}
