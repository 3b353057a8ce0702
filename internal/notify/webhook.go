package notify

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// Receipt is the payload posted to the receipt webhook after a payment
// commits.
type Receipt struct {
	PaymentID       uint   `json:"paymentId"`
	StudentID       uint   `json:"studentId"`
	StudentName     string `json:"studentName"`
	AmountPaid      string `json:"amountPaid"`
	AmountRemaining string `json:"amountRemaining"`
}

// SendReceipt posts the receipt to RECEIPT_WEBHOOK_URL. It is fire and
// forget: no URL configured means no-op, and failures are only logged.
func SendReceipt(rec Receipt) {
	url := os.Getenv("RECEIPT_WEBHOOK_URL")
	if url == "" {
		return
	}
	body, _ := json.Marshal(rec)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("receipt webhook failed: %v", err)
		return
	}
	defer resp.Body.Close()
}
