// file: internals/cache/cache.go
//
// Read cache berbasis Redis untuk lookup yang sering dipanggil halaman guru
// (status semester, tahun ajaran aktif). Opsional: kalau REDIS_ADDR kosong,
// semua helper jadi no-op dan controller jatuh ke query DB biasa.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	rdb *redis.Client

	// ErrCacheMiss dikembalikan GetJSON kalau key tidak ada (atau cache mati).
	ErrCacheMiss = errors.New("cache: miss")
)

const DefaultTTL = 60 * time.Second

func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️ REDIS_ADDR kosong, cache dimatikan")
		return
	}

	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}

	rdb = redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis tidak bisa dihubungi (%v), cache dimatikan", err)
		rdb = nil
		return
	}
	log.Println("✅ Redis connected.")
}

func Enabled() bool { return rdb != nil }

// GetJSON membaca key lalu unmarshal ke dst. Miss / cache mati → ErrCacheMiss.
func GetJSON(ctx context.Context, key string, dst any) error {
	if rdb == nil {
		return ErrCacheMiss
	}
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		// error infra dianggap miss saja, jangan ganggu request
		log.Printf("[CACHE] get %s err: %v", key, err)
		return ErrCacheMiss
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return ErrCacheMiss
	}
	return nil
}

func SetJSON(ctx context.Context, key string, val any, ttl time.Duration) {
	if rdb == nil {
		return
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("[CACHE] set %s err: %v", key, err)
	}
}

// Del menghapus satu/banyak key; best-effort, dipanggil setelah tulisan
// lifecycle commit supaya pembaca tidak melihat status basi.
func Del(ctx context.Context, keys ...string) {
	if rdb == nil || len(keys) == 0 {
		return
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[CACHE] del err: %v", err)
	}
}

func Close() {
	if rdb != nil {
		_ = rdb.Close()
	}
}
