//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/storefront_api/internal/cache/memory"
	ikafka "github.com/Gunvolt24/storefront_api/internal/kafka"
	pgrepo "github.com/Gunvolt24/storefront_api/internal/repo/postgres"
	"github.com/Gunvolt24/storefront_api/internal/testutil"
	"github.com/Gunvolt24/storefront_api/internal/usecase"
	"github.com/Gunvolt24/storefront_api/pkg/logger"
	"github.com/Gunvolt24/storefront_api/pkg/validate"
)

var reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func safe(t *testing.T) string { return reUnsafe.ReplaceAllString(t.Name(), "-") }

func writeMsg(t *testing.T, ctx context.Context, brokers []string, topic string, value []byte) {
	t.Helper()
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Balancer:     &kafka.LeastBytes{},
	}
	defer w.Close()
	require.NoError(t, w.WriteMessages(ctx, kafka.Message{Value: value}))
}

// newStack поднимает Postgres + Redpanda и возвращает общие зависимости.
func newStack(t *testing.T) (context.Context, *pgxpool.Pool, *pgrepo.OrderRepository, *testutil.KafkaEnv, *usecase.OrderService) {
	t.Helper()

	// длинный контекст — только на старт контейнеров
	ctxStart, cancelStart := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancelStart)

	pg, stopPG, err := testutil.StartPostgresTC(ctxStart)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopPG(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	kf, stopKF, err := testutil.StartKafkaTC(ctxStart, "orders-itc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = stopKF(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	t.Cleanup(cancel)

	pool, err := pgxpool.New(ctx, pg.DSN)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	repo := pgrepo.NewOrderRepository(pool)
	svc := usecase.NewOrderService(repo, cachemem.NewLRUCacheTTL(100, time.Minute), logg, validate.NewOrderValidator())

	return ctx, pool, repo, kf, svc
}

func startConsumer(t *testing.T, ctx context.Context, kf *testutil.KafkaEnv, topic, group string, svc *usecase.OrderService) {
	t.Helper()

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	consumer := ikafka.NewConsumer(&ikafka.ConsumerConfig{
		Brokers:        kf.Brokers,
		Topic:          topic,
		GroupID:        group,
		StartOffset:    "first",
		ProcessTimeout: 5 * time.Second,
		RetryInitial:   200 * time.Millisecond,
		RetryMax:       2 * time.Second,
	}, svc, logg)

	runCtx, cancelRun := context.WithCancel(ctx)
	t.Cleanup(cancelRun)
	t.Cleanup(func() { _ = consumer.Close() })
	go func() { _ = consumer.Run(runCtx) }()

	// даём консьюмеру присоединиться к группе
	time.Sleep(1500 * time.Millisecond)
}

func waitSaved(t *testing.T, ctx context.Context, repo *pgrepo.OrderRepository, id string) {
	t.Helper()
	deadline := time.Now().Add(20 * time.Second)
	for {
		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		if got != nil {
			require.Equal(t, id, got.ID)
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("order %s not saved in time", id)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// 1) Валидный документ из топика оказывается в БД
func TestKafka_Valid_Saved_TC(t *testing.T) {
	ctx, _, repo, kf, svc := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	startConsumer(t, ctx, kf, topic, group, svc)

	ord := testutil.MakeOrder()
	require.NoError(t, validate.NewOrderValidator().Validate(context.Background(), &ord))

	raw, err := json.Marshal(ord)
	require.NoError(t, err)
	writeMsg(t, ctx, kf.Brokers, topic, raw)

	waitSaved(t, ctx, repo, ord.ID)
}

// 2) Не-JSON сообщение пропускается, валидное после него — сохраняется
func TestKafka_Skip_InvalidJSON_Then_SaveValid_TC(t *testing.T) {
	ctx, _, repo, kf, svc := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-invalid-json-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	startConsumer(t, ctx, kf, topic, group, svc)

	writeMsg(t, ctx, kf.Brokers, topic, []byte("not-a-json"))

	ord := testutil.MakeOrder()
	raw, err := json.Marshal(ord)
	require.NoError(t, err)
	writeMsg(t, ctx, kf.Brokers, topic, raw)

	waitSaved(t, ctx, repo, ord.ID)
}

// 3) Невалидный по доменным правилам документ пропускается (коммит без сохранения)
func TestKafka_Skip_InvalidOrder_Then_SaveValid_TC(t *testing.T) {
	ctx, _, repo, kf, svc := newStack(t)

	topic, group := testutil.UniqueTopicAndGroup(kf.BaseTopic + "-invalid-order-" + safe(t))
	require.NoError(t, testutil.EnsureTopic(ctx, kf.Brokers[0], topic))

	startConsumer(t, ctx, kf, topic, group, svc)

	bad := testutil.MakeOrder(testutil.WithTotal(-1))
	badRaw, err := json.Marshal(bad)
	require.NoError(t, err)
	writeMsg(t, ctx, kf.Brokers, topic, badRaw)

	good := testutil.MakeOrder()
	goodRaw, err := json.Marshal(good)
	require.NoError(t, err)
	writeMsg(t, ctx, kf.Brokers, topic, goodRaw)

	waitSaved(t, ctx, repo, good.ID)

	// невалидный так и не должен появиться
	got, err := repo.GetByID(ctx, bad.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}
