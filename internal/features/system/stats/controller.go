package system_stats

import (
	"net/http"

	users_enums "chathub-backend/internal/features/users/enums"
	users_middleware "chathub-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type SystemStatsResponseDTO struct {
	DiskTotalBytes   uint64  `json:"diskTotalBytes"`
	DiskUsedBytes    uint64  `json:"diskUsedBytes"`
	DiskUsedPercent  float64 `json:"diskUsedPercent"`
	MemoryTotalBytes uint64  `json:"memoryTotalBytes"`
	MemoryUsedBytes  uint64  `json:"memoryUsedBytes"`
	MemoryPercent    float64 `json:"memoryPercent"`
}

type StatsController struct{}

func (c *StatsController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/system/stats", c.GetSystemStats)
}

// GetSystemStats
// @Summary Get host disk and memory stats
// @Tags system
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SystemStatsResponseDTO
// @Failure 403 {object} map[string]string
// @Router /system/stats [get]
func (c *StatsController) GetSystemStats(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if user.Role != users_enums.UserRoleAdmin {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}

	diskUsage, err := disk.Usage("/")
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read disk stats"})
		return
	}

	memoryStats, err := mem.VirtualMemory()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read memory stats"})
		return
	}

	ctx.JSON(http.StatusOK, SystemStatsResponseDTO{
		DiskTotalBytes:   diskUsage.Total,
		DiskUsedBytes:    diskUsage.Used,
		DiskUsedPercent:  diskUsage.UsedPercent,
		MemoryTotalBytes: memoryStats.Total,
		MemoryUsedBytes:  memoryStats.Used,
		MemoryPercent:    memoryStats.UsedPercent,
	})
}

var statsController = &StatsController{}

func GetStatsController() *StatsController {
	return statsController
}
