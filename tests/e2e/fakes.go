//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"locker-reservation/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

// ------------------------------------------------------------
// ロッカー制御装置のフェイク
// ------------------------------------------------------------
type FakeBox struct {
	ID         int `json:"id"`
	PhysicalID int `json:"physicalId"`
	SizeID     int `json:"sizeId"`
}

type FakeToken struct {
	Token     string    `json:"token"`
	BoxID     *int      `json:"boxId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type FakeLocker struct {
	Serial  string
	Offline bool
	// size id -> free units
	Free   map[int]int
	Boxes  []FakeBox
	Tokens []FakeToken
}

type FakeTokenEdit struct {
	Serial  string
	Token   string     `json:"token"`
	EndDate *time.Time `json:"endDate"`
	BoxID   *int       `json:"boxId"`
}

type FakeHardware struct {
	server *httptest.Server

	mu        sync.Mutex
	seq       int
	lockers   map[string]*FakeLocker
	created   map[string]bool // idTransaction -> confirmed
	confirms  []string
	edits     []FakeTokenEdit
	authSeen  []string
	boxOnNext *int
}

func NewFakeHardware() *FakeHardware {
	f := &FakeHardware{
		lockers: make(map[string]*FakeLocker),
		created: make(map[string]bool),
	}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		f.mu.Lock()
		f.authSeen = append(f.authSeen, c.GetHeader("Authorization"))
		f.mu.Unlock()
		c.Next()
	})
	r.GET("/lockers", f.listLockers)
	r.GET("/lockers/:serial/availability", f.availability)
	r.POST("/lockers/:serial/tokens", f.createToken)
	r.PATCH("/lockers/:serial/tokens", f.editToken)
	r.POST("/transactions/:id/confirm", f.confirm)
	r.POST("/transactions/:id/extend", f.extend)

	f.server = httptest.NewServer(r)
	return f
}

func (f *FakeHardware) URL() string { return f.server.URL }

func (f *FakeHardware) Close() { f.server.Close() }

func (f *FakeHardware) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq = 0
	f.lockers = make(map[string]*FakeLocker)
	f.created = make(map[string]bool)
	f.confirms = nil
	f.edits = nil
	f.authSeen = nil
	f.boxOnNext = nil
}

func (f *FakeHardware) AddLocker(l FakeLocker) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lockers[l.Serial] = &l
}

// AssignBox makes the next created token report the given box.
func (f *FakeHardware) AssignBox(box int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.boxOnNext = &box
}

func (f *FakeHardware) Confirms() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.confirms...)
}

func (f *FakeHardware) Edits() []FakeTokenEdit {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]FakeTokenEdit(nil), f.edits...)
}

func (f *FakeHardware) CreatedTransactions() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

func (f *FakeHardware) AuthHeaders() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.authSeen...)
}

func (f *FakeHardware) locker(c *gin.Context) (*FakeLocker, bool) {
	l, ok := f.lockers[c.Param("serial")]
	if !ok {
		c.String(http.StatusNotFound, "locker not found")
		return nil, false
	}
	if l.Offline {
		c.String(http.StatusServiceUnavailable, "locker offline")
		return nil, false
	}
	return l, true
}

func (f *FakeHardware) listLockers(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]gin.H, 0, len(f.lockers))
	for _, l := range f.lockers {
		out = append(out, gin.H{"serial": l.Serial, "boxes": l.Boxes, "tokens": l.Tokens})
	}
	c.JSON(http.StatusOK, out)
}

func (f *FakeHardware) availability(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	l, ok := f.locker(c)
	if !ok {
		return
	}
	out := make([]gin.H, 0, len(l.Free))
	for sizeID, free := range l.Free {
		out = append(out, gin.H{"sizeId": sizeID, "quantityFree": free})
	}
	c.JSON(http.StatusOK, out)
}

func (f *FakeHardware) createToken(c *gin.Context) {
	var body struct {
		SizeID    int       `json:"sizeId"`
		StartDate time.Time `json:"startDate"`
		EndDate   time.Time `json:"endDate"`
		Confirmed bool      `json:"confirmed"`
		BoxID     *int      `json:"boxId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	l, ok := f.locker(c)
	if !ok {
		return
	}
	if !body.Confirmed && l.Free[body.SizeID] <= 0 {
		c.String(http.StatusConflict, "box already reserved")
		return
	}

	f.seq++
	txID := fmt.Sprintf("tx-%d", f.seq)
	prefix := "P"
	if body.Confirmed {
		prefix = "U"
	}
	token := fmt.Sprintf("%s-%d", prefix, f.seq)
	f.created[txID] = body.Confirmed
	if !body.Confirmed {
		l.Free[body.SizeID]--
	}

	box := body.BoxID
	if box == nil && f.boxOnNext != nil {
		box = f.boxOnNext
		f.boxOnNext = nil
	}
	c.JSON(http.StatusOK, gin.H{"idTransaction": txID, "token": token, "boxId": box})
}

func (f *FakeHardware) editToken(c *gin.Context) {
	var edit FakeTokenEdit
	if err := c.ShouldBindJSON(&edit); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	edit.Serial = c.Param("serial")

	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, edit)
	c.Status(http.StatusNoContent)
}

func (f *FakeHardware) confirm(c *gin.Context) {
	txID := c.Param("id")

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.created[txID]; !ok {
		c.String(http.StatusNotFound, "transaction not found")
		return
	}
	f.created[txID] = true
	f.confirms = append(f.confirms, txID)
	c.JSON(http.StatusOK, gin.H{"idTransaction": txID, "token": "D-" + strings.TrimPrefix(txID, "tx-")})
}

func (f *FakeHardware) extend(c *gin.Context) {
	var body struct {
		EndDate time.Time `json:"endDate"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.created[c.Param("id")]; !ok {
		c.String(http.StatusNotFound, "transaction not found")
		return
	}
	f.seq++
	txID := fmt.Sprintf("tx-%d", f.seq)
	f.created[txID] = false
	c.JSON(http.StatusOK, gin.H{"idTransaction": txID, "endDate": body.EndDate})
}

// ------------------------------------------------------------
// 決済プロバイダーのフェイク
// ------------------------------------------------------------
type FakePayments struct {
	server *httptest.Server

	mu       sync.Mutex
	payments map[string]fakePayment
}

type fakePayment struct {
	status   payment.Status
	metadata payment.Metadata
}

func NewFakePayments() *FakePayments {
	f := &FakePayments{payments: make(map[string]fakePayment)}

	r := gin.New()
	r.GET("/v1/payments/:id", func(c *gin.Context) {
		f.mu.Lock()
		p, ok := f.payments[c.Param("id")]
		f.mu.Unlock()
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "payment not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":       c.Param("id"),
			"status":   p.status,
			"metadata": p.metadata,
		})
	})

	f.server = httptest.NewServer(r)
	return f
}

func (f *FakePayments) URL() string { return f.server.URL }

func (f *FakePayments) Close() { f.server.Close() }

func (f *FakePayments) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments = make(map[string]fakePayment)
}

func (f *FakePayments) Put(id string, status payment.Status, meta payment.Metadata) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payments[id] = fakePayment{status: status, metadata: meta}
}

// ------------------------------------------------------------
// メール送信の記録
// ------------------------------------------------------------
type SentMail struct {
	To      string
	Subject string
	Body    string
}

type Outbox struct {
	mu   sync.Mutex
	sent []SentMail
}

func (o *Outbox) Send(_ context.Context, to, subject, body string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (o *Outbox) Sent() []SentMail {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]SentMail(nil), o.sent...)
}

func (o *Outbox) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = nil
}
