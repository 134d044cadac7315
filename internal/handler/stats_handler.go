package handler

import (
	"net/http"

	"artistry/internal/repository"

	"github.com/gin-gonic/gin"
)

// StatsHandler feeds the admin dashboard header: live counts per section
// and the unread-inquiries badge.
type StatsHandler struct {
	cakes     *repository.CakeRepository
	bouquets  *repository.BouquetRepository
	paintings *repository.PaintingRepository
	inquiries *repository.InquiryRepository
	orders    *repository.OrderRepository
}

func NewStatsHandler(cakes *repository.CakeRepository, bouquets *repository.BouquetRepository,
	paintings *repository.PaintingRepository, inquiries *repository.InquiryRepository,
	orders *repository.OrderRepository) *StatsHandler {
	return &StatsHandler{cakes: cakes, bouquets: bouquets, paintings: paintings, inquiries: inquiries, orders: orders}
}

func (h *StatsHandler) Get(c *gin.Context) {
	counts := gin.H{}
	for name, count := range map[string]func() (int64, error){
		"cakes":           h.cakes.Count,
		"bouquets":        h.bouquets.Count,
		"paintings":       h.paintings.Count,
		"inquiries":       h.inquiries.Count,
		"orders":          h.orders.Count,
		"unreadInquiries": h.inquiries.CountUnread,
	} {
		n, err := count()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		counts[name] = n
	}
	c.JSON(http.StatusOK, counts)
}
