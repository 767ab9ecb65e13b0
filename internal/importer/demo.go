package importer

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"flightimport/internal/model"
)

// demoUserPrefix 演示用户的用户名前缀
const demoUserPrefix = "demo_user_"

// backdateDays 演示订单回填的最大天数
const backdateDays = 60

// synthesizeUsers 补齐演示用户到目标数量
// 只做增量：已有的演示用户保持不动，新用户名从首个空缺的序号起避让生成
func synthesizeUsers(existing map[string]bool, target int, rng *rand.Rand) []*model.User {
	count := 0
	for name := range existing {
		if strings.HasPrefix(name, demoUserPrefix) {
			count++
		}
	}

	faker := gofakeit.New(rng.Int63())

	var users []*model.User
	for next := 1; count+len(users) < target; next++ {
		username := fmt.Sprintf("%s%03d", demoUserPrefix, next)
		if existing[username] {
			continue
		}
		users = append(users, &model.User{
			Username: username,
			Password: faker.Password(true, true, true, false, false, 10),
		})
	}
	return users
}

// synthesizeBookings 生成演示订单
// 用户与航班均匀取样，状态按 70% CONFIRMED / 15% CANCELLED / 15% PENDING 加权，
// 下单时间在参照点之前 60 天内均匀回填
func synthesizeBookings(userIDs, flightIDs []int64, count int, now time.Time, rng *rand.Rand) []*model.Booking {
	if len(userIDs) == 0 || len(flightIDs) == 0 || count <= 0 {
		return nil
	}

	bookings := make([]*model.Booking, 0, count)
	for i := 0; i < count; i++ {
		backdate := time.Duration(rng.Int63n(int64(backdateDays) * int64(24*time.Hour)))
		bookings = append(bookings, &model.Booking{
			UserID:      userIDs[rng.Intn(len(userIDs))],
			FlightID:    flightIDs[rng.Intn(len(flightIDs))],
			BookingTime: now.Add(-backdate),
			Status:      rollStatus(rng),
		})
	}
	return bookings
}

// rollStatus 加权随机订单状态
func rollStatus(rng *rand.Rand) model.BookingStatus {
	draw := rng.Float64()
	switch {
	case draw < 0.70:
		return model.BookingConfirmed
	case draw < 0.85:
		return model.BookingCancelled
	default:
		return model.BookingPending
	}
}
