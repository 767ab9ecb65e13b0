package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// dateLayout 窗口日期格式
const dateLayout = "2006-01-02"

// AppConfig 应用配置
type AppConfig struct {
	Data   DataConfig   `toml:"data"`
	Window WindowConfig `toml:"window"`
	Demo   DemoConfig   `toml:"demo"`
}

// DataConfig 数据路径配置
type DataConfig struct {
	InputPath string `toml:"input_path"` // 班期数据文件（.csv 或 .xlsx）
	DBPath    string `toml:"db_path"`    // 目标 SQLite 数据库
}

// WindowConfig 展开窗口配置，两端日期均含当天
type WindowConfig struct {
	Start string `toml:"start"` // YYYY-MM-DD
	End   string `toml:"end"`   // YYYY-MM-DD
}

// DemoConfig 演示数据配置
type DemoConfig struct {
	TargetUsers  int   `toml:"target_users"`  // 演示用户目标数量（只补齐缺口）
	BookingCount int   `toml:"booking_count"` // 演示订单数量
	Seed         int64 `toml:"seed"`          // 随机种子，0 表示每次运行随机
}

// DefaultConfig 默认配置，与原始导入脚本的默认参数一致
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Data: DataConfig{
			InputPath: filepath.Join("sourceData", "data.csv"),
			DBPath:    filepath.Join("data", "flight_system.db"),
		},
		Window: WindowConfig{
			Start: "2025-10-01",
			End:   "2025-12-31",
		},
		Demo: DemoConfig{
			TargetUsers:  20,
			BookingCount: 200,
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 从可执行文件同目录的 config.toml 加载配置
// 配置文件不存在时使用默认配置
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// ParseWindow 解析日期窗口
func (c *AppConfig) ParseWindow() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, c.Window.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid window start %q: %w", c.Window.Start, err)
	}
	end, err = time.Parse(dateLayout, c.Window.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid window end %q: %w", c.Window.End, err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("window end %s is before start %s", c.Window.End, c.Window.Start)
	}
	return start, end, nil
}

// Validate 校验配置
// 配置错误在任何行处理开始前报告，不做部分工作
func (c *AppConfig) Validate() error {
	if _, _, err := c.ParseWindow(); err != nil {
		return err
	}
	if c.Data.InputPath == "" {
		return fmt.Errorf("input path is empty")
	}
	if _, err := os.Stat(c.Data.InputPath); err != nil {
		return fmt.Errorf("input file not found: %s", c.Data.InputPath)
	}
	if c.Demo.TargetUsers < 0 || c.Demo.BookingCount < 0 {
		return fmt.Errorf("demo counts must not be negative")
	}
	return nil
}
