package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"flightimport/internal/config"
	"flightimport/internal/importer"
	"flightimport/internal/store"
)

var (
	inputPath    = flag.String("csv", "", "班期数据文件 .csv/.xlsx (覆盖配置文件)")
	dbPath       = flag.String("db", "", "目标 SQLite 数据库 (覆盖配置文件)")
	windowStart  = flag.String("start", "", "窗口开始日期 YYYY-MM-DD，含当天 (覆盖配置文件)")
	windowEnd    = flag.String("end", "", "窗口结束日期 YYYY-MM-DD，含当天 (覆盖配置文件)")
	seed         = flag.Int64("seed", 0, "随机种子，固定后两次运行输出一致 (0 表示随机)")
	demoUsers    = flag.Int("demo-users", -1, "演示用户目标数量 (覆盖配置文件)")
	demoBookings = flag.Int("demo-bookings", -1, "演示订单数量 (覆盖配置文件)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  航班班期数据导入工具")
	fmt.Println("==========================================")

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}

	// 命令行参数覆盖配置
	if *inputPath != "" {
		cfg.Data.InputPath = *inputPath
	}
	if *dbPath != "" {
		cfg.Data.DBPath = *dbPath
	}
	if *windowStart != "" {
		cfg.Window.Start = *windowStart
	}
	if *windowEnd != "" {
		cfg.Window.End = *windowEnd
	}
	if *seed != 0 {
		cfg.Demo.Seed = *seed
	}
	if *demoUsers >= 0 {
		cfg.Demo.TargetUsers = *demoUsers
	}
	if *demoBookings >= 0 {
		cfg.Demo.BookingCount = *demoBookings
	}

	// 配置错误在任何处理开始前报告
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("配置错误: %v", err)
	}
	start, end, _ := cfg.ParseWindow()

	// 固定种子可完整复现剩余座位、票价噪声与演示数据
	rngSeed := cfg.Demo.Seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	st, err := store.New(cfg.Data.DBPath)
	if err != nil {
		logger.Fatalf("打开数据库失败: %v", err)
	}
	defer func() { _ = st.Close() }()

	coord := importer.NewCoordinator(st, logger)
	summary, err := coord.Run(importer.Options{
		InputPath:    cfg.Data.InputPath,
		WindowStart:  start,
		WindowEnd:    end,
		DemoUsers:    cfg.Demo.TargetUsers,
		DemoBookings: cfg.Demo.BookingCount,
		Now:          time.Now(),
		Rand:         rng,
	})
	if errors.Is(err, importer.ErrNothingToImport) {
		fmt.Printf("输入 %s 中没有可导入的航班 (共 %d 行，跳过 %d 行)，数据库保持原状\n",
			cfg.Data.InputPath, summary.TotalRows, summary.SkippedRows)
		return
	}
	if err != nil {
		logger.Fatalf("导入失败: %v", err)
	}

	fmt.Printf("导入完成: %d 条航班 (窗口 %s ~ %s)，新增用户 %d，订单 %d -> %s\n",
		summary.Flights, cfg.Window.Start, cfg.Window.End,
		summary.NewUsers, summary.Bookings, cfg.Data.DBPath)
}
