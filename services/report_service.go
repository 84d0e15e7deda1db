package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"restopos/entity"
	"restopos/repository"
)

type ReportService struct {
	Repo          *repository.ReportRepository
	InventoryRepo *repository.InventoryRepository
}

func NewReportService(repo *repository.ReportRepository, invRepo *repository.InventoryRepository) *ReportService {
	return &ReportService{Repo: repo, InventoryRepo: invRepo}
}

const (
	defaultReportDays  = 30
	defaultReportLimit = 10
)

// NormalizeRange fills in the trailing-30-day default and pins the bounds to
// whole days so the range is inclusive on both ends.
func NormalizeRange(from, to *time.Time) (time.Time, time.Time) {
	now := time.Now()
	end := now
	if to != nil {
		end = *to
	}
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), end.Location())

	start := end.AddDate(0, 0, -defaultReportDays)
	if from != nil {
		start = *from
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	return start, end
}

// ---------------- Top items ----------------

type TopItem struct {
	MenuItemID   uint   `json:"menuItemId"`
	Name         string `json:"name"`
	CategoryName string `json:"categoryName,omitempty"`
	Image        string `json:"image,omitempty"`
	QuantitySold int    `json:"quantitySold"`
	Revenue      string `json:"revenue"` // 2-dp string; money leaves decimal only at the edge
}

// TopItems aggregates settled order lines per menu item, ranked by revenue.
// Ties keep first-seen order (stable sort). Labels come from the menu rows as
// they are today, not as they were when the orders were placed.
func (s *ReportService) TopItems(from, to *time.Time, limit int) ([]TopItem, error) {
	if limit <= 0 {
		limit = defaultReportLimit
	}
	start, end := NormalizeRange(from, to)

	lines, err := s.Repo.FindSettledLines(start, end)
	if err != nil {
		return nil, err
	}

	type acc struct {
		item    TopItem
		revenue decimal.Decimal
	}
	byItem := make(map[uint]*acc)
	order := make([]uint, 0)

	for _, l := range lines {
		a, ok := byItem[l.MenuItemID]
		if !ok {
			a = &acc{item: TopItem{
				MenuItemID:   l.MenuItemID,
				Name:         l.Name,
				CategoryName: l.CategoryName,
				Image:        l.Image,
			}}
			byItem[l.MenuItemID] = a
			order = append(order, l.MenuItemID)
		}
		a.item.QuantitySold += l.Quantity
		a.revenue = a.revenue.Add(l.Subtotal)
	}

	ranked := make([]*acc, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, byItem[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].revenue.GreaterThan(ranked[j].revenue)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]TopItem, 0, len(ranked))
	for _, a := range ranked {
		a.item.Revenue = a.revenue.StringFixed(2)
		out = append(out, a.item)
	}
	return out, nil
}

// ---------------- Daily sales ----------------

type DailySales struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Orders  int    `json:"orders"`
	Revenue string `json:"revenue"`
}

type SalesSummary struct {
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate"`
	TotalOrders int          `json:"totalOrders"`
	Revenue     string       `json:"revenue"`
	Days        []DailySales `json:"days"`
}

func (s *ReportService) Sales(from, to *time.Time) (*SalesSummary, error) {
	start, end := NormalizeRange(from, to)

	orders, err := s.Repo.FindSettledOrders(start, end)
	if err != nil {
		return nil, err
	}

	type day struct {
		orders  int
		revenue decimal.Decimal
	}
	byDay := make(map[string]*day)
	keys := make([]string, 0)
	grand := decimal.Zero

	for _, o := range orders {
		k := o.CreatedAt.Format("2006-01-02")
		d, ok := byDay[k]
		if !ok {
			d = &day{}
			byDay[k] = d
			keys = append(keys, k)
		}
		d.orders++
		d.revenue = d.revenue.Add(o.Total)
		grand = grand.Add(o.Total)
	}
	sort.Strings(keys)

	out := &SalesSummary{
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		TotalOrders: len(orders),
		Revenue:     grand.StringFixed(2),
	}
	for _, k := range keys {
		d := byDay[k]
		out.Days = append(out.Days, DailySales{Date: k, Orders: d.orders, Revenue: d.revenue.StringFixed(2)})
	}
	return out, nil
}

// ---------------- Inventory ----------------

// LowStock lists items at or below their reorder level.
func (s *ReportService) LowStock() ([]entity.InventoryItem, error) {
	return s.InventoryRepo.ListBelowReorder()
}
