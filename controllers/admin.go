package controllers

import (
	"fmt"
	"html"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"pledge-points-api/config"
	"pledge-points-api/models"
	"pledge-points-api/services"
)

// PurgePendingPoints deletes every undecided submission (admin only).
// Approved and rejected records are never touched.
func PurgePendingPoints(c *gin.Context) {
	count, err := services.PurgePending()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if count == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No pending submissions to delete", "deleted": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Pending submissions deleted",
		"deleted": count,
	})
}

// SendPendingDigest mails the current pending queue to the recipients in
// DIGEST_RECIPIENTS (comma separated). Triggered explicitly by an admin;
// nothing is pushed automatically.
func SendPendingDigest(c *gin.Context) {
	recipients := splitRecipients(os.Getenv("DIGEST_RECIPIENTS"))
	if len(recipients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "DIGEST_RECIPIENTS is not configured"})
		return
	}

	pending, err := services.ListSubmissions([]string{models.StatusPending}, "")
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := config.SendMail(recipients, "Pending pledge points", pendingDigestHTML(pending)); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send digest: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Digest sent",
		"recipients": len(recipients),
		"pending":    len(pending),
	})
}

func pendingDigestHTML(pending []models.PointSubmission) string {
	if len(pending) == 0 {
		return "<p>No pending point submissions.</p>"
	}

	var b strings.Builder
	b.WriteString("<p>Pending point submissions:</p><ul>")
	for _, s := range pending {
		sign := ""
		if s.PointChange >= 0 {
			sign = "+"
		}
		fmt.Fprintf(&b, "<li>ID %d: %s%d %s — %s (%s)</li>",
			s.ID, sign, s.PointChange,
			html.EscapeString(s.Pledge),
			html.EscapeString(s.Comment),
			html.EscapeString(s.Brother))
	}
	b.WriteString("</ul>")
	return b.String()
}

func splitRecipients(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
