package importer

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"flightimport/internal/store"
)

const testCSVHeader = "航班班次,机型,出发城市,到达城市,起飞时间,降落时间,里程（公里）," +
	"周一班期,周二班期,周三班期,周四班期,周五班期,周六班期,周日班期"

// writeCSV 写入临时班期文件并返回路径
func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	content := testCSVHeader + "\n" + strings.Join(lines, "\n") + "\n"
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New(filepath.Join(t.TempDir(), "flight_system.db"))
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func testOptions(input string, seed int64) Options {
	return Options{
		InputPath:    input,
		WindowStart:  time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		WindowEnd:    time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC),
		DemoUsers:    3,
		DemoBookings: 20,
		Now:          time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
		Rand:         rand.New(rand.NewSource(seed)),
	}
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	// 周一+周三班期，窗口 10-01(周三)~10-07 内应展开 2 班；
	// 第二行缺起降时间，按预期被跳过
	input := writeCSV(t,
		"MU5100,空客321neo,上海虹桥,北京首都,23:30,01:15,\"1,178\",有班期,,有班期,,,,",
		"CA1830,波音737,重庆江北,广州白云,,,980,有班期,,,,,,",
	)
	st := newTestStore(t)

	coord := NewCoordinator(st, quietLogger())
	summary, err := coord.Run(testOptions(input, 42))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.TotalRows != 2 || summary.AcceptedRows != 1 || summary.SkippedRows != 1 {
		t.Fatalf("unexpected row counts: %+v", summary)
	}
	if summary.Flights != 2 {
		t.Fatalf("want 2 flights got %d", summary.Flights)
	}

	flights, err := st.CountFlights()
	if err != nil {
		t.Fatalf("CountFlights: %v", err)
	}
	if flights != 2 {
		t.Fatalf("want 2 flights in db got %d", flights)
	}

	// 总座位取自机型规则，跨零点航班降落晚于起飞
	var seats int
	var dep, arr string
	err = st.QueryRow("SELECT total_seats, departure_time, arrival_time FROM Flight ORDER BY flight_id LIMIT 1").Scan(&seats, &dep, &arr)
	if err != nil {
		t.Fatalf("query flight: %v", err)
	}
	if seats != 220 {
		t.Fatalf("空客321neo want 220 seats got %d", seats)
	}
	if dep != "2025-10-01 23:30:00" || arr != "2025-10-02 01:15:00" {
		t.Fatalf("unexpected times: dep=%q arr=%q", dep, arr)
	}

	// 演示数据：管理员 + 3 个演示用户，20 条订单
	users, err := st.CountUsers()
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if users != 4 {
		t.Fatalf("want 4 users got %d", users)
	}
	bookings, err := st.CountBookings()
	if err != nil {
		t.Fatalf("CountBookings: %v", err)
	}
	if bookings != 20 {
		t.Fatalf("want 20 bookings got %d", bookings)
	}
}

func TestRun_TwiceLeavesSingleDataset(t *testing.T) {
	t.Parallel()

	input := writeCSV(t,
		"MU5100,空客321,上海虹桥,北京首都,07:30,09:45,\"1,178\",有班期,有班期,有班期,有班期,有班期,有班期,有班期",
	)
	st := newTestStore(t)
	coord := NewCoordinator(st, quietLogger())

	if _, err := coord.Run(testOptions(input, 1)); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := coord.Run(testOptions(input, 2)); err != nil {
		t.Fatalf("second run: %v", err)
	}

	// 每天一班，窗口 7 天：重复导入不翻倍
	flights, err := st.CountFlights()
	if err != nil {
		t.Fatalf("CountFlights: %v", err)
	}
	if flights != 7 {
		t.Fatalf("want 7 flights after two runs got %d", flights)
	}

	// 用户只补齐，不会重复创建
	users, err := st.CountUsers()
	if err != nil {
		t.Fatalf("CountUsers: %v", err)
	}
	if users != 4 {
		t.Fatalf("want 4 users after two runs got %d", users)
	}
}

func TestRun_FixedSeedIsReproducible(t *testing.T) {
	t.Parallel()

	input := writeCSV(t,
		"MU5100,空客321neo,上海虹桥,北京首都,23:30,01:15,\"1,178\",有班期,,有班期,,,,",
		"CZ3904,波音787,广州白云,乌鲁木齐,09:05,14:20,\"3,270\",,有班期,,有班期,,有班期,",
	)

	dump := func(seed int64) []string {
		st := newTestStore(t)
		coord := NewCoordinator(st, quietLogger())
		if _, err := coord.Run(testOptions(input, seed)); err != nil {
			t.Fatalf("Run: %v", err)
		}

		rows, err := st.DB().Query(`
			SELECT flight_number, departure_time, arrival_time, total_seats, remaining_seats, price
			FROM Flight ORDER BY flight_id
		`)
		if err != nil {
			t.Fatalf("query flights: %v", err)
		}
		defer rows.Close()

		var out []string
		for rows.Next() {
			var number, dep, arr string
			var seats, remaining, price int
			if err := rows.Scan(&number, &dep, &arr, &seats, &remaining, &price); err != nil {
				t.Fatalf("scan: %v", err)
			}
			out = append(out, fmt.Sprintf("%s|%s|%s|%d|%d|%d", number, dep, arr, seats, remaining, price))
		}
		return out
	}

	first := dump(42)
	second := dump(42)
	other := dump(43)

	if strings.Join(first, "\n") != strings.Join(second, "\n") {
		t.Fatalf("same seed must produce identical flights:\n%v\n--\n%v", first, second)
	}
	if strings.Join(first, "\n") == strings.Join(other, "\n") {
		t.Fatalf("different seed should produce different noise")
	}
}

func TestRun_NothingToImportLeavesStoreUntouched(t *testing.T) {
	t.Parallel()

	goodInput := writeCSV(t,
		"MU5100,空客321,上海虹桥,北京首都,07:30,09:45,\"1,178\",有班期,有班期,有班期,有班期,有班期,有班期,有班期",
	)
	st := newTestStore(t)
	coord := NewCoordinator(st, quietLogger())

	if _, err := coord.Run(testOptions(goodInput, 1)); err != nil {
		t.Fatalf("seed run: %v", err)
	}
	before, err := st.CountFlights()
	if err != nil {
		t.Fatalf("CountFlights: %v", err)
	}
	if before == 0 {
		t.Fatalf("precondition: store should have flights")
	}

	// 全部行都会被拒绝：没有班期标记
	badInput := writeCSV(t,
		"MU5100,空客321,上海虹桥,北京首都,07:30,09:45,\"1,178\",,,,,,,",
	)
	summary, err := coord.Run(testOptions(badInput, 2))
	if !errors.Is(err, ErrNothingToImport) {
		t.Fatalf("want ErrNothingToImport got %v", err)
	}
	if summary.Flights != 0 {
		t.Fatalf("want 0 flights in summary got %d", summary.Flights)
	}

	// 旧数据不能被清掉
	after, err := st.CountFlights()
	if err != nil {
		t.Fatalf("CountFlights: %v", err)
	}
	if after != before {
		t.Fatalf("store must stay untouched: before=%d after=%d", before, after)
	}
}
