package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"furima_dev_v1_202608/internal/api/dto"
	"furima_dev_v1_202608/internal/middleware"
	"furima_dev_v1_202608/internal/model"
	"gorm.io/gorm"
)

// ==================== 交易历史 ====================

func TestGetTransactions_RequiresSession(t *testing.T) {
	r, _ := setupCtlTest(t)

	w := doRequest(t, r, http.MethodGet, "/users/transactions.json", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("无会话 status = %d, want 404", w.Code)
	}
	if got := decodeErrorBody(t, w); got != "no session" {
		t.Errorf("error = %q, want no session", got)
	}

	// 伪造的令牌同样拒绝
	w = doRequest(t, r, http.MethodGet, "/users/transactions.json", "garbage-token")
	if w.Code != http.StatusNotFound {
		t.Errorf("伪造令牌 status = %d, want 404", w.Code)
	}
}

func TestGetTransactions_UnknownUser(t *testing.T) {
	r, _ := setupCtlTest(t)

	// 会话有效但用户已不存在
	token, err := middleware.GenerateSessionToken(42)
	if err != nil {
		t.Fatalf("签发会话令牌失败: %v", err)
	}

	w := doRequest(t, r, http.MethodGet, "/users/transactions.json", token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if got := decodeErrorBody(t, w); got != "user not found" {
		t.Errorf("error = %q, want user not found", got)
	}
}

func TestGetTransactions_Empty(t *testing.T) {
	r, db := setupCtlTest(t)
	seedCtlFixtures(t, db)

	token, err := middleware.GenerateSessionToken(1)
	if err != nil {
		t.Fatalf("签发会话令牌失败: %v", err)
	}

	w := doRequest(t, r, http.MethodGet, "/users/transactions.json", token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body struct {
		HasNext bool            `json:"has_next"`
		Items   json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应体解析失败: %v", err)
	}
	if body.HasNext {
		t.Error("has_next 应为 false")
	}
	if string(body.Items) != "[]" {
		t.Errorf("空历史应序列化为 [], got %s", body.Items)
	}
}

func TestGetTransactions_WithTrade(t *testing.T) {
	r, db := setupCtlTest(t)
	seedCtlFixtures(t, db)
	seedTradeForUser1(t, db)

	// 配送服务假后端，历史视图会实时查询
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto.ShipmentStatusRes{
			Status: model.ShippingStatusWaitPickup, ReserveTime: 1700000000,
		})
	}))
	defer ts.Close()
	cfg := model.Config{Name: model.ConfigNamePaymentServiceURL, Val: ts.URL}
	if err := db.Create(&cfg).Error; err != nil {
		t.Fatalf("写入配置失败: %v", err)
	}

	token, err := middleware.GenerateSessionToken(1)
	if err != nil {
		t.Fatalf("签发会话令牌失败: %v", err)
	}

	w := doRequest(t, r, http.MethodGet, "/users/transactions.json", token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body struct {
		HasNext bool             `json:"has_next"`
		Items   []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应体解析失败: %v", err)
	}
	if len(body.Items) != 1 {
		t.Fatalf("条数 = %d, want 1", len(body.Items))
	}
	got := body.Items[0]
	if got["buyer_id"] != float64(2) {
		t.Errorf("buyer_id = %v", got["buyer_id"])
	}
	if got["transaction_evidence_status"] != model.TransactionEvidenceStatusWaitShipping {
		t.Errorf("transaction_evidence_status = %v", got["transaction_evidence_status"])
	}
	// 实时状态盖过本地缓存的 initial
	if got["shipping_status"] != model.ShippingStatusWaitPickup {
		t.Errorf("shipping_status = %v, want wait_pickup", got["shipping_status"])
	}
}

func TestGetTransactions_UpstreamDown(t *testing.T) {
	r, db := setupCtlTest(t)
	seedCtlFixtures(t, db)
	seedTradeForUser1(t, db)

	// 指向已关闭的端口
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	url := ts.URL
	ts.Close()
	cfg := model.Config{Name: model.ConfigNamePaymentServiceURL, Val: url}
	if err := db.Create(&cfg).Error; err != nil {
		t.Fatalf("写入配置失败: %v", err)
	}

	token, err := middleware.GenerateSessionToken(1)
	if err != nil {
		t.Fatalf("签发会话令牌失败: %v", err)
	}

	w := doRequest(t, r, http.MethodGet, "/users/transactions.json", token)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if got := decodeErrorBody(t, w); got != "failed to request to shipment service" {
		t.Errorf("error = %q", got)
	}
}

// seedTradeForUser1 卖家 1 的一笔进行中交易（含凭证与配送记录）
func seedTradeForUser1(t *testing.T, db *gorm.DB) {
	t.Helper()
	buyer := model.User{ID: 2, AccountName: "buyer1", HashedPassword: []byte("x")}
	if err := db.Create(&buyer).Error; err != nil {
		t.Fatalf("插入买家失败: %v", err)
	}
	createdAt := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	item := model.Item{
		ID: 10, SellerID: 1, BuyerID: 2, Status: model.ItemStatusTrading,
		Name: "商品", Price: 1000, Description: "説明",
		ImageName: "abc.jpg", CategoryID: 2,
		CreatedAt: createdAt, UpdatedAt: createdAt,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("插入商品失败: %v", err)
	}
	evidence := model.TransactionEvidence{
		ID: 100, SellerID: 1, BuyerID: 2,
		Status: model.TransactionEvidenceStatusWaitShipping,
		ItemID: 10, ItemName: "商品", ItemPrice: 1000,
		ItemDescription: "説明", ItemCategoryID: 2, ItemRootCategoryID: 1,
	}
	if err := db.Create(&evidence).Error; err != nil {
		t.Fatalf("插入交易凭证失败: %v", err)
	}
	shipping := model.Shipping{
		TransactionEvidenceID: 100, Status: model.ShippingStatusInitial,
		ItemName: "商品", ItemID: 10, ReserveID: "res-123", ReserveTime: 1700000000,
		ToAddress: "東京都", ToName: "buyer1", FromAddress: "大阪府", FromName: "seller1",
	}
	if err := db.Create(&shipping).Error; err != nil {
		t.Fatalf("插入配送记录失败: %v", err)
	}
}
