package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"furima_dev_v1_202608/internal/api/dto"
	"furima_dev_v1_202608/internal/model"
	"furima_dev_v1_202608/internal/repository"
)

// ==================== 测试辅助 ====================

func setupShipmentTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&model.Config{}); err != nil {
		t.Fatalf("自动建表失败: %v", err)
	}
	return db
}

// 把配送服务地址写进 payment_service_url（线上就是这么存的）
func setShipmentURL(t *testing.T, db *gorm.DB, url string) {
	t.Helper()
	cfg := model.Config{Name: model.ConfigNamePaymentServiceURL, Val: url}
	if err := db.Create(&cfg).Error; err != nil {
		t.Fatalf("写入配置失败: %v", err)
	}
}

// ==================== 单元测试 ====================

func TestShipmentService_Status_Success(t *testing.T) {
	db := setupShipmentTestDB(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/status" {
			t.Errorf("path = %s, want /status", r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); ua != shipmentAPIUserAgent {
			t.Errorf("User-Agent = %q, want %q", ua, shipmentAPIUserAgent)
		}
		if auth := r.Header.Get("Authorization"); auth != shipmentAPIToken {
			t.Errorf("Authorization = %q, want %q", auth, shipmentAPIToken)
		}

		var req dto.ShipmentStatusReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("请求体解析失败: %v", err)
		}
		if req.ReserveID != "res-123" {
			t.Errorf("reserve_id = %q, want res-123", req.ReserveID)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto.ShipmentStatusRes{
			Status:      model.ShippingStatusShipping,
			ReserveTime: 1700000000,
		})
	}))
	defer ts.Close()

	setShipmentURL(t, db, ts.URL)
	svc := NewShipmentService(repository.NewConfigRepository(db))

	res, err := svc.Status(context.Background(), "res-123")
	if err != nil {
		t.Fatalf("Status 失败: %v", err)
	}
	if res.Status != model.ShippingStatusShipping {
		t.Errorf("status = %q, want shipping", res.Status)
	}
	if res.ReserveTime != 1700000000 {
		t.Errorf("reserve_time = %d", res.ReserveTime)
	}
}

func TestShipmentService_Status_Non200(t *testing.T) {
	db := setupShipmentTestDB(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	setShipmentURL(t, db, ts.URL)
	svc := NewShipmentService(repository.NewConfigRepository(db))

	_, err := svc.Status(context.Background(), "res-123")
	if !errors.Is(err, ErrShipmentServiceFailed) {
		t.Fatalf("err = %v, want ErrShipmentServiceFailed", err)
	}
}

func TestShipmentService_Status_MalformedBody(t *testing.T) {
	db := setupShipmentTestDB(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("not json"))
	}))
	defer ts.Close()

	setShipmentURL(t, db, ts.URL)
	svc := NewShipmentService(repository.NewConfigRepository(db))

	_, err := svc.Status(context.Background(), "res-123")
	if !errors.Is(err, ErrShipmentServiceFailed) {
		t.Fatalf("err = %v, want ErrShipmentServiceFailed", err)
	}
}

func TestShipmentService_Status_Unreachable(t *testing.T) {
	db := setupShipmentTestDB(t)

	// 起一个服务拿到端口后立刻关掉，保证连接被拒绝
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	setShipmentURL(t, db, url)
	svc := NewShipmentService(repository.NewConfigRepository(db))

	_, err := svc.Status(context.Background(), "res-123")
	if !errors.Is(err, ErrShipmentServiceUnavailable) {
		t.Fatalf("err = %v, want ErrShipmentServiceUnavailable", err)
	}
}

func TestShipmentService_URLResolution(t *testing.T) {
	db := setupShipmentTestDB(t)
	svc := NewShipmentService(repository.NewConfigRepository(db))
	ctx := context.Background()

	// 没有配置时回落到缺省地址
	if got := svc.getShipmentServiceURL(ctx); got != model.DefaultShipmentServiceURL {
		t.Errorf("缺省地址 = %q, want %q", got, model.DefaultShipmentServiceURL)
	}

	setShipmentURL(t, db, "http://shipment.example.com")
	if got := svc.getShipmentServiceURL(ctx); got != "http://shipment.example.com" {
		t.Errorf("配置地址 = %q", got)
	}

	// shipment_service_url 这个 key 目前不参与解析
	cfg := model.Config{Name: model.ConfigNameShipmentServiceURL, Val: "http://other.example.com"}
	if err := db.Create(&cfg).Error; err != nil {
		t.Fatalf("写入配置失败: %v", err)
	}
	if got := svc.getShipmentServiceURL(ctx); got != "http://shipment.example.com" {
		t.Errorf("解析仍应读 payment_service_url, got %q", got)
	}
}
