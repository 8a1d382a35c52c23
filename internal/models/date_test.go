package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if d.String() != "2024-02-29" {
		t.Errorf("String() = %q", d.String())
	}

	for _, bad := range []string{"", "2024-13-01", "29/02/2024", "2024-2-1"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestDateMonths(t *testing.T) {
	d := NewDate(2024, time.March, 31)
	if got := d.AddMonths(-1).String(); got != "2024-02-01" {
		t.Errorf("AddMonths(-1) = %s, want 2024-02-01", got)
	}
	if got := d.StartOfMonth().String(); got != "2024-03-01" {
		t.Errorf("StartOfMonth() = %s", got)
	}
	if got := NewDate(2024, time.February, 10).EndOfMonth().String(); got != "2024-02-29" {
		t.Errorf("EndOfMonth() = %s", got)
	}
	if got := d.MonthKey(); got != "2024-03" {
		t.Errorf("MonthKey() = %s", got)
	}
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{From: NewDate(2024, 1, 1), To: NewDate(2024, 1, 31)}
	tests := []struct {
		day  Date
		want bool
	}{
		{NewDate(2024, 1, 1), true},
		{NewDate(2024, 1, 31), true},
		{NewDate(2023, 12, 31), false},
		{NewDate(2024, 2, 1), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.day); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.day, got, tt.want)
		}
	}

	open := DateRange{}
	if !open.Contains(NewDate(1999, 1, 1)) {
		t.Error("open range should contain everything")
	}
}

func TestDateJSONAndScan(t *testing.T) {
	var payload struct {
		Date Date `json:"date"`
	}
	if err := json.Unmarshal([]byte(`{"date":"2024-05-06"}`), &payload); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `{"date":"2024-05-06"}` {
		t.Errorf("Marshal() = %s", out)
	}

	var scanned Date
	if err := scanned.Scan([]byte("2024-05-06")); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if scanned.String() != payload.Date.String() {
		t.Errorf("Scan() = %s, want %s", scanned, payload.Date)
	}
	if err := scanned.Scan(time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)); err != nil || scanned.String() != "2024-05-06" {
		t.Errorf("Scan(time) = %s, %v", scanned, err)
	}
}

func TestStudentAge(t *testing.T) {
	s := Student{Birthdate: NewDate(2010, time.March, 15)}
	if got := s.Age(NewDate(2024, time.March, 14)); got != 13 {
		t.Errorf("Age day before birthday = %d, want 13", got)
	}
	if got := s.Age(NewDate(2024, time.March, 15)); got != 14 {
		t.Errorf("Age on birthday = %d, want 14", got)
	}
}

func TestPaymentDerivedAmounts(t *testing.T) {
	p := Payment{PurchasedHours: 10, HourlyRate: 30, Discount: 30, AmountPaid: 270}
	if got := p.ExpectedAmount(); got != 270 {
		t.Errorf("ExpectedAmount() = %v, want 270", got)
	}
	if got := p.DiscountPercentage(); got != 10 {
		t.Errorf("DiscountPercentage() = %v, want 10", got)
	}
	if p.IsOverpaid() || p.IsUnderpaid() {
		t.Error("exact payment should be neither over- nor underpaid")
	}
	p.AmountPaid = 200
	if !p.IsUnderpaid() {
		t.Error("expected underpaid")
	}
}
