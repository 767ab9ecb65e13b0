package importer

import (
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"flightimport/internal/estimate"
	"flightimport/internal/model"
	"flightimport/internal/parser"
	"flightimport/internal/schedule"
	"flightimport/internal/store"
)

// ErrNothingToImport 输入中没有任何可导入的航班
// 此时不清空目标库，保持原有数据不动
var ErrNothingToImport = errors.New("no flights to import")

// Options 单次导入的参数
type Options struct {
	InputPath    string
	WindowStart  time.Time
	WindowEnd    time.Time
	DemoUsers    int        // 演示用户目标数量
	DemoBookings int        // 演示订单数量
	Now          time.Time  // 订单回填时间的参照点
	Rand         *rand.Rand // 全部随机量的来源，固定种子可完整复现
}

// Summary 导入结果汇总
type Summary struct {
	RunID        string
	TotalRows    int
	AcceptedRows int
	SkippedRows  int
	Flights      int
	NewUsers     int
	Bookings     int
	Duration     time.Duration
}

// Coordinator 导入协调器
// 串联读取、解析、展开、估算与入库；整个导入是单线程的一次性批处理
type Coordinator struct {
	store  *store.Store
	logger *logrus.Logger
}

// NewCoordinator 创建导入协调器
func NewCoordinator(st *store.Store, logger *logrus.Logger) *Coordinator {
	if logger == nil {
		logger = logrus.New()
	}
	return &Coordinator{store: st, logger: logger}
}

// Run 执行一次完整导入
// 清空、插入、补齐用户与生成订单在同一个事务内完成，任一步失败整体回滚
func (c *Coordinator) Run(opts Options) (*Summary, error) {
	startedAt := time.Now()
	runID := uuid.NewString()
	log := c.logger.WithField("run_id", runID)

	summary := &Summary{RunID: runID}

	log.WithFields(logrus.Fields{
		"input":  opts.InputPath,
		"window": fmt.Sprintf("%s ~ %s", opts.WindowStart.Format("2006-01-02"), opts.WindowEnd.Format("2006-01-02")),
	}).Info("开始导入班期数据")

	rows, err := readRows(opts.InputPath)
	if err != nil {
		return summary, err
	}
	summary.TotalRows = len(rows)

	flights := c.buildFlights(rows, opts, summary, log)
	summary.Flights = len(flights)

	if len(flights) == 0 {
		summary.Duration = time.Since(startedAt)
		log.Warn("没有可导入的航班，目标库保持原状")
		return summary, ErrNothingToImport
	}

	logID, logErr := c.store.CreateImportLog(
		runID, opts.InputPath,
		opts.WindowStart.Format("2006-01-02"), opts.WindowEnd.Format("2006-01-02"),
	)
	if logErr != nil {
		log.WithError(logErr).Warn("写入导入日志失败")
	}

	if err := c.load(flights, opts, summary, log); err != nil {
		if logErr == nil {
			if ferr := c.store.FinishImportLog(logID, 0, 0, 0, "failed", err.Error()); ferr != nil {
				log.WithError(ferr).Warn("更新导入日志失败")
			}
		}
		return summary, err
	}

	if logErr == nil {
		if ferr := c.store.FinishImportLog(logID, summary.Flights, summary.NewUsers, summary.Bookings, "success", ""); ferr != nil {
			log.WithError(ferr).Warn("更新导入日志失败")
		}
	}

	summary.Duration = time.Since(startedAt)
	log.WithFields(logrus.Fields{
		"flights":   summary.Flights,
		"new_users": summary.NewUsers,
		"bookings":  summary.Bookings,
		"skipped":   summary.SkippedRows,
		"duration":  summary.Duration.Round(time.Millisecond).String(),
	}).Info("导入完成")

	return summary, nil
}

// buildFlights 把班期行展开成具体航班记录
// 座位容量按行计算一次，剩余座位与票价按每次起降独立取样；
// 输出顺序为输入行顺序，同一行内按日期顺序
func (c *Coordinator) buildFlights(rows []map[string]string, opts Options, summary *Summary, log *logrus.Entry) []*model.Flight {
	var flights []*model.Flight

	for i, raw := range rows {
		parsed, reason := parser.ParseRow(raw)
		if parsed == nil {
			summary.SkippedRows++
			log.WithFields(logrus.Fields{
				"row":    i + 2, // 表头占第一行
				"reason": string(reason),
			}).Debug("跳过班期行")
			continue
		}
		summary.AcceptedRows++

		seats := estimate.EstimateSeats(parsed.Model)
		occurrences := schedule.Expand(parsed.Weekdays, parsed.Departure, parsed.Arrival, opts.WindowStart, opts.WindowEnd)

		for _, occ := range occurrences {
			flights = append(flights, &model.Flight{
				FlightNumber:   parsed.FlightNumber,
				Model:          parsed.Model,
				Origin:         parsed.Origin,
				Destination:    parsed.Destination,
				DepartureTime:  occ.Departure,
				ArrivalTime:    occ.Arrival,
				TotalSeats:     seats,
				RemainingSeats: estimate.RollRemainingSeats(seats, opts.Rand),
				Price:          estimate.EstimatePrice(parsed.DistanceKM, opts.Rand),
			})
		}
	}

	return flights
}

// load 在单个事务内完成全部写入
func (c *Coordinator) load(flights []*model.Flight, opts Options, summary *Summary, log *logrus.Entry) error {
	tx, err := c.store.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := store.TruncateFlightData(tx); err != nil {
		return err
	}

	flightIDs, err := store.InsertFlights(tx, flights)
	if err != nil {
		return err
	}

	userIDs, usernames, err := store.ListUsers(tx)
	if err != nil {
		return err
	}

	newUsers := synthesizeUsers(usernames, opts.DemoUsers, opts.Rand)
	newIDs, err := store.InsertUsers(tx, newUsers)
	if err != nil {
		return err
	}
	summary.NewUsers = len(newUsers)
	userIDs = append(userIDs, newIDs...)

	bookings := synthesizeBookings(userIDs, flightIDs, opts.DemoBookings, opts.Now, opts.Rand)
	if err := store.InsertBookings(tx, bookings); err != nil {
		return err
	}
	summary.Bookings = len(bookings)

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// readRows 按扩展名选择读取器
func readRows(path string) ([]map[string]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return parser.ReadXLSX(path)
	default:
		return parser.ReadCSV(path)
	}
}
