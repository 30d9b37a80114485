package product

import (
	"github.com/Rajchodisetti/theme-engine/internal/data"
)

// MonitorItem binds one theme to its constraint and tradable assets.
type MonitorItem struct {
	Theme        string   `json:"theme"`
	ConstraintID string   `json:"constraint_id"`
	Assets       []string `json:"assets"`
}

// MonitorPlan is the product-level watch list shown by the plan command.
type MonitorPlan struct {
	Product string        `json:"product"`
	Items   []MonitorItem `json:"items"`
}

// BuildMonitorPlan lists each theme of the product with its constraint and
// asset bindings.
func BuildMonitorPlan(reg *Registry, assets *data.AssetTable, productName string) (MonitorPlan, error) {
	themes, err := reg.ThemesFor(productName)
	if err != nil {
		return MonitorPlan{}, err
	}
	plan := MonitorPlan{Product: productName}
	for _, theme := range themes {
		id, _, _ := reg.ConstraintFor(theme)
		plan.Items = append(plan.Items, MonitorItem{
			Theme:        theme,
			ConstraintID: id,
			Assets:       assets.AssetsFor(productName, theme),
		})
	}
	return plan, nil
}
