package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/UnTrende/luxx-sub002/internal/config"
)

func NewRedis(cfg *config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		// cache e rate limit degradam; API continua de pé
		log.Printf("redis unavailable (%v), cache/ratelimit disabled", err)
		return nil
	}

	return rdb
}

// Availability guarda respostas de disponibilidade por poucos segundos.
// Qualquer escrita de booking invalida o dia inteiro do barbeiro.
// Injetado explicitamente; receiver nil desliga o cache.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailability(rdb *redis.Client, ttl time.Duration) *Availability {
	if rdb == nil {
		return nil
	}
	return &Availability{rdb: rdb, ttl: ttl}
}

func slotsKey(barberID uint, date string, serviceIDs []uint) string {
	ids := make([]string, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		ids = append(ids, fmt.Sprint(id))
	}
	sort.Strings(ids)

	return fmt.Sprintf("slots:%d:%s:%s", barberID, date, strings.Join(ids, ","))
}

func (a *Availability) Get(
	ctx context.Context,
	barberID uint,
	date string,
	serviceIDs []uint,
) ([]string, bool) {

	if a == nil {
		return nil, false
	}

	raw, err := a.rdb.Get(ctx, slotsKey(barberID, date, serviceIDs)).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (a *Availability) Set(
	ctx context.Context,
	barberID uint,
	date string,
	serviceIDs []uint,
	slots []string,
) {

	if a == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := a.rdb.Set(ctx, slotsKey(barberID, date, serviceIDs), raw, a.ttl).Err(); err != nil {
		log.Println("availability cache set error:", err)
	}
}

// Invalidate derruba todas as combinações de serviços do dia.
func (a *Availability) Invalidate(ctx context.Context, barberID uint, date string) {
	a.dropPattern(ctx, fmt.Sprintf("slots:%d:%s:*", barberID, date))
}

// InvalidateBarber derruba todos os dias do barbeiro (mudança de
// horários ocultos afeta qualquer data).
func (a *Availability) InvalidateBarber(ctx context.Context, barberID uint) {
	a.dropPattern(ctx, fmt.Sprintf("slots:%d:*", barberID))
}

func (a *Availability) dropPattern(ctx context.Context, pattern string) {
	if a == nil {
		return
	}

	keys, err := a.rdb.Keys(ctx, pattern).Result()
	if err != nil || len(keys) == 0 {
		return
	}

	if err := a.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Println("availability cache invalidate error:", err)
	}
}
