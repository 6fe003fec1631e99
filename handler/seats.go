package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"

	"cinema_booking/config"
	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient = redis.NewClient(&redis.Options{
		Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
	})

	seatConnections = make(map[uint]map[*websocket.Conn]bool)
	seatMutex       sync.Mutex
)

type SeatUI struct {
	Id         uint    `json:"id"`
	Label      string  `json:"label"`
	Type       string  `json:"type"`
	Status     string  `json:"status"` // available | booked
	Price      float64 `json:"price"`
	PublicCode string  `json:"publicCode,omitempty"`
}

// FetchShowtimeSeats builds the seat map for a showtime. A seat is booked
// when an active booking for this showtime references it; the denormalized
// seat.booking_id column is not consulted here.
func FetchShowtimeSeats(showtimeId uint) ([]SeatUI, error) {
	db := database.DB

	var showtime model.Showtime
	if err := db.First(&showtime, showtimeId).Error; err != nil {
		return nil, err
	}

	var seats []model.Seat
	if err := db.Where("room_id = ?", showtime.RoomId).
		Order("\"row\" ASC, \"column\" ASC").Find(&seats).Error; err != nil {
		return nil, err
	}

	var bookings []model.Booking
	if err := db.Where("showtime_id = ? AND is_cancelled = ?", showtimeId, false).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	booked := make(map[uint]string, len(bookings))
	for _, b := range bookings {
		booked[b.SeatId] = b.PublicCode
	}

	result := make([]SeatUI, 0, len(seats))
	for _, s := range seats {
		price := showtime.PriceNormal
		if s.Type == constants.SEAT_VIP {
			price = showtime.PriceVIP
		}
		ui := SeatUI{
			Id:     s.ID,
			Label:  s.SeatNumber,
			Type:   s.Type,
			Status: "available",
			Price:  price,
		}
		if code, ok := booked[s.ID]; ok {
			ui.Status = "booked"
			ui.PublicCode = code
		}
		result = append(result, ui)
	}
	return result, nil
}

// GetShowtimeSeats returns the current seat map over HTTP.
func GetShowtimeSeats(c *fiber.Ctx) error {
	showtimeId := c.Locals("inputId").(int)

	seats, err := FetchShowtimeSeats(uint(showtimeId))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOWTIME_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, seats)
}

// SeatWebsocket streams seat-map changes for one showtime. The initial
// full state is sent on connect; afterwards every booking or cancellation
// published on the showtime's redis channel is relayed to the socket.
func SeatWebsocket(c *websocket.Conn) {
	showtimeIdStr := c.Params("id")
	id64, err := strconv.ParseUint(showtimeIdStr, 10, 64)
	if err != nil {
		log.Printf("Invalid showtimeId: %s", showtimeIdStr)
		c.Close()
		return
	}
	showtimeId := uint(id64)

	defer func() {
		seatMutex.Lock()
		if seatConnections[showtimeId] != nil {
			delete(seatConnections[showtimeId], c)
			if len(seatConnections[showtimeId]) == 0 {
				delete(seatConnections, showtimeId)
			}
		}
		seatMutex.Unlock()
		c.Close()
	}()

	seatMutex.Lock()
	if seatConnections[showtimeId] == nil {
		seatConnections[showtimeId] = make(map[*websocket.Conn]bool)
	}
	seatConnections[showtimeId][c] = true
	seatMutex.Unlock()

	// initial full state
	seats, err := FetchShowtimeSeats(showtimeId)
	if err != nil {
		log.Printf("loading seat map for showtime %d failed: %v", showtimeId, err)
		return
	}
	c.WriteJSON(seats)

	pubsub := redisClient.Subscribe(
		context.Background(),
		fmt.Sprintf("showtime:%d", showtimeId),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()
	for msg := range channel {
		payload := []byte(msg.Payload)

		seatMutex.Lock()
		for conn := range seatConnections[showtimeId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(seatConnections[showtimeId], conn)
			}
		}
		seatMutex.Unlock()
	}
}

// PublishSeatChange pushes a seat-map delta onto the showtime's redis
// channel. Failures are logged; the booking itself already committed.
func PublishSeatChange(showtimeId uint, event string, seatIds []uint) {
	payload, err := json.Marshal(fiber.Map{
		"event":   event,
		"seatIds": seatIds,
	})
	if err != nil {
		return
	}

	if err := redisClient.Publish(
		context.Background(),
		fmt.Sprintf("showtime:%d", showtimeId),
		payload,
	).Err(); err != nil {
		log.Printf("publishing seat change for showtime %d failed: %v", showtimeId, err)
	}
}
