package monitoring

import (
	"database/sql"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Service holds runtime context for monitoring and reporting.
type Service struct {
	db        *sql.DB
	startedAt time.Time
}

type Snapshot struct {
	TimestampUTC             string `json:"timestamp_utc"`
	UptimeSeconds            int64  `json:"uptime_seconds"`
	HTTPActiveRequests       int64  `json:"http_active_requests"`
	HTTPTotalRequests        uint64 `json:"http_total_requests"`
	HTTPUnauthorizedRequests uint64 `json:"http_unauthorized_requests"`
	DBOpenConnections        int    `json:"db_open_connections"`
	DBInUseConnections       int    `json:"db_in_use_connections"`
	DBWaitCount              int64  `json:"db_wait_count"`
	Goroutines               int    `json:"goroutines"`
	GoMemoryAllocBytes       uint64 `json:"go_memory_alloc_bytes"`
	GoMemorySysBytes         uint64 `json:"go_memory_sys_bytes"`
	GoHeapInUseBytes         uint64 `json:"go_heap_in_use_bytes"`
	GoGCCount                uint32 `json:"go_gc_count"`
	UsersTotal               int64  `json:"users_total"`
	MealsTotal               int64  `json:"meals_total"`
	DBSizeBytes              int64  `json:"db_size_bytes"`
}

func NewService(db *sql.DB, startedAt time.Time) *Service {
	return &Service{db: db, startedAt: startedAt}
}

func (s *Service) StatusText() string {
	dbState := "ok"
	if err := s.db.Ping(); err != nil {
		dbState = "error: " + err.Error()
	}

	uptime := time.Since(s.startedAt).Round(time.Second)
	activeHTTP, totalHTTP, unauthorizedHTTP := getHTTPStats()
	stats := s.db.Stats()

	return strings.Join([]string{
		"Daily Diet Server Status",
		fmt.Sprintf("Uptime: %s", uptime),
		fmt.Sprintf("DB: %s", dbState),
		fmt.Sprintf("HTTP active requests: %d", activeHTTP),
		fmt.Sprintf("HTTP total requests: %d", totalHTTP),
		fmt.Sprintf("HTTP unauthorized requests: %d", unauthorizedHTTP),
		fmt.Sprintf("DB open connections: %d", stats.OpenConnections),
		fmt.Sprintf("Go goroutines: %d", runtime.NumGoroutine()),
	}, "\n")
}

func (s *Service) ConnectionsText() string {
	stats := s.db.Stats()
	activeHTTP, totalHTTP, unauthorizedHTTP := getHTTPStats()

	return strings.Join([]string{
		"Daily Diet Connections",
		fmt.Sprintf("DB MaxOpenConnections: %d", stats.MaxOpenConnections),
		fmt.Sprintf("DB OpenConnections: %d", stats.OpenConnections),
		fmt.Sprintf("DB InUse: %d", stats.InUse),
		fmt.Sprintf("DB Idle: %d", stats.Idle),
		fmt.Sprintf("DB WaitCount: %d", stats.WaitCount),
		fmt.Sprintf("HTTP active requests: %d", activeHTTP),
		fmt.Sprintf("HTTP total requests: %d", totalHTTP),
		fmt.Sprintf("HTTP unauthorized requests: %d", unauthorizedHTTP),
	}, "\n")
}

func (s *Service) RuntimeText() string {
	var memory runtime.MemStats
	runtime.ReadMemStats(&memory)

	return strings.Join([]string{
		"Daily Diet Runtime",
		fmt.Sprintf("Go version: %s", runtime.Version()),
		fmt.Sprintf("CPU cores: %d", runtime.NumCPU()),
		fmt.Sprintf("Goroutines: %d", runtime.NumGoroutine()),
		fmt.Sprintf("Memory alloc: %s", formatBytes(int64(memory.Alloc))),
		fmt.Sprintf("Memory sys: %s", formatBytes(int64(memory.Sys))),
		fmt.Sprintf("Heap in use: %s", formatBytes(int64(memory.HeapInuse))),
		fmt.Sprintf("GC cycles: %d", memory.NumGC),
	}, "\n")
}

func (s *Service) UsersText() string {
	var usersTotal int64
	_ = s.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&usersTotal)

	var usersNew24h int64
	_ = s.db.QueryRow(`SELECT COUNT(*) FROM users WHERE created_at >= NOW() - INTERVAL '24 hours'`).Scan(&usersNew24h)

	var mealsTotal int64
	_ = s.db.QueryRow(`SELECT COUNT(*) FROM meals`).Scan(&mealsTotal)

	var mealsNew24h int64
	_ = s.db.QueryRow(`SELECT COUNT(*) FROM meals WHERE created_at >= NOW() - INTERVAL '24 hours'`).Scan(&mealsNew24h)

	return strings.Join([]string{
		"Daily Diet Users",
		fmt.Sprintf("Users total: %d", usersTotal),
		fmt.Sprintf("Users created in 24h: %d", usersNew24h),
		fmt.Sprintf("Meals total: %d", mealsTotal),
		fmt.Sprintf("Meals logged in 24h: %d", mealsNew24h),
	}, "\n")
}

func (s *Service) Snapshot() Snapshot {
	stats := s.db.Stats()
	activeHTTP, totalHTTP, unauthorizedHTTP := getHTTPStats()

	var memory runtime.MemStats
	runtime.ReadMemStats(&memory)

	snap := Snapshot{
		TimestampUTC:             time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds:            int64(time.Since(s.startedAt).Seconds()),
		HTTPActiveRequests:       activeHTTP,
		HTTPTotalRequests:        totalHTTP,
		HTTPUnauthorizedRequests: unauthorizedHTTP,
		DBOpenConnections:        stats.OpenConnections,
		DBInUseConnections:       stats.InUse,
		DBWaitCount:              int64(stats.WaitCount),
		Goroutines:               runtime.NumGoroutine(),
		GoMemoryAllocBytes:       memory.Alloc,
		GoMemorySysBytes:         memory.Sys,
		GoHeapInUseBytes:         memory.HeapInuse,
		GoGCCount:                memory.NumGC,
	}

	_ = s.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&snap.UsersTotal)
	_ = s.db.QueryRow(`SELECT COUNT(*) FROM meals`).Scan(&snap.MealsTotal)
	_ = s.db.QueryRow(`SELECT COALESCE(pg_database_size(current_database()), 0)`).Scan(&snap.DBSizeBytes)

	return snap
}

func (s *Service) HelpText() string {
	return strings.Join([]string{
		"Daily Diet monitor endpoints:",
		"GET /api/monitor/status - server status",
		"GET /api/monitor/connections - DB and HTTP connections",
		"GET /api/monitor/runtime - Go runtime stats",
		"GET /api/monitor/users - users and meals stats",
		"GET /api/monitor/snapshot - full snapshot as JSON",
		"GET /api/monitor/all - full text report",
		"GET /api/monitor/help - this help",
	}, "\n")
}

func (s *Service) AllText() string {
	return strings.Join([]string{
		s.StatusText(),
		"",
		s.ConnectionsText(),
		"",
		s.RuntimeText(),
		"",
		s.UsersText(),
	}, "\n")
}

func formatBytes(value int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	size := float64(value)
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d %s", value, units[unit])
	}
	return fmt.Sprintf("%.2f %s", size, units[unit])
}
