package fcm

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Internship-LDP/HRIS-LDP-sub001/models"
	"github.com/Internship-LDP/HRIS-LDP-sub001/utils/events"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

const TopicPrefix = "topic_"

// TopicAdminHR menerima semua delta counter untuk area admin (surat pending,
// rekrutmen, staf, terminasi).
const TopicAdminHR = TopicPrefix + "admin_hr"

var fcmClient *messaging.Client

// Init menyiapkan Firebase Admin SDK. Dipanggil sekali dari main sebelum
// StartNotifierConsumer.
func Init(ctx context.Context, projectID string) error {
	cfg := &firebase.Config{ProjectID: projectID}

	app, err := firebase.NewApp(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("getting Firebase Messaging client: %w", err)
	}

	fcmClient = client
	log.Println("✅ Firebase Admin SDK initialized successfully.")
	return nil
}

// TopicDivision maps a division name to its push topic,
// e.g. "Keuangan" -> "topic_divisi_keuangan".
func TopicDivision(division string) string {
	slug := strings.ToLower(strings.TrimSpace(division))
	slug = strings.Join(strings.Fields(slug), "_")
	return TopicPrefix + "divisi_" + slug
}

// TopicUser is the per-account private topic (forced logout, login refresh).
func TopicUser(accountID uint) string {
	return TopicPrefix + "user_" + strconv.FormatUint(uint64(accountID), 10)
}

// SendToTopic kirim satu pesan notifikasi + data payload ke topic.
func SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	if fcmClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}

	msg := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority:     "high",
			Notification: &messaging.AndroidNotification{ChannelID: "default_channel"},
		},
	}

	_, err := fcmClient.Send(ctx, msg)
	return err
}

// SendDataToTopic kirim data-only message (tanpa notifikasi visual), dipakai
// untuk delta counter dan forced logout.
func SendDataToTopic(ctx context.Context, topic string, data map[string]string) error {
	if fcmClient == nil {
		return fmt.Errorf("FCM client not initialized")
	}

	msg := &messaging.Message{
		Topic:   topic,
		Data:    data,
		Android: &messaging.AndroidConfig{Priority: "high"},
	}

	_, err := fcmClient.Send(ctx, msg)
	return err
}

// StartNotifierConsumer drains the domain event bus and fans events out to
// FCM topics. Data payloads carry {channel, entity, id, status, holder} so
// clients can reconcile their notification counters without a refetch.
func StartNotifierConsumer(ctx context.Context) {
	log.Println("✅ FCM Notifier Consumer started")

	for {
		select {
		case <-ctx.Done():
			return
		case e := <-events.Bus:
			go func(event events.Event) {
				sendCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				dispatch(sendCtx, event)
			}(e)
		}
	}
}

func dispatch(ctx context.Context, event events.Event) {
	switch event.Kind {

	case events.LetterSubmitted:
		letter := event.Letter
		if letter == nil {
			return
		}
		data := letterData(letter)
		title := "Surat Baru Masuk"
		body := fmt.Sprintf("Surat %s dari %s menunggu disposisi.", letter.NomorSurat, letter.Pengirim)
		if err := SendToTopic(ctx, TopicAdminHR, title, body, data); err != nil {
			log.Printf("fcm: letter submitted notify failed: %v", err)
		}

	case events.LetterStatusMoved:
		letter := event.Letter
		if letter == nil {
			return
		}
		data := letterData(letter)
		data["old_status"] = string(event.OldStatus)

		// Delta counter untuk badge admin.
		if err := SendDataToTopic(ctx, TopicAdminHR, data); err != nil {
			log.Printf("fcm: letter counter delta failed: %v", err)
		}

		switch letter.Status {
		case models.StatusDidisposisi:
			title := "Disposisi Masuk"
			body := fmt.Sprintf("Surat %s didisposisi ke divisi Anda.", letter.NomorSurat)
			if err := SendToTopic(ctx, TopicDivision(letter.DivisiTujuan), title, body, data); err != nil {
				log.Printf("fcm: disposition notify failed: %v", err)
			}
		case models.StatusDitolak:
			if letter.SenderID != nil {
				title := "Surat Ditolak"
				body := fmt.Sprintf("Surat %s dikembalikan ke Anda.", letter.NomorSurat)
				if err := SendToTopic(ctx, TopicUser(*letter.SenderID), title, body, data); err != nil {
					log.Printf("fcm: reject notify failed: %v", err)
				}
			}
		}

	case events.AccountStatusChanged:
		account := event.Account
		if account == nil {
			return
		}
		data := accountData(account)
		if account.Status == models.AccountInactive {
			// Forced logout: data-only ke channel privat user.
			data["action"] = "force_logout"
			if err := SendDataToTopic(ctx, TopicUser(account.ID), data); err != nil {
				log.Printf("fcm: force logout push failed: %v", err)
			}
		}
		if err := SendDataToTopic(ctx, TopicAdminHR, data); err != nil {
			log.Printf("fcm: account counter delta failed: %v", err)
		}

	case events.AccountLoggedIn:
		account := event.Account
		if account == nil {
			return
		}
		data := accountData(account)
		if account.LastLoginAt != nil {
			data["last_login_at"] = account.LastLoginAt.Format(time.RFC3339)
		}
		// Refresh last_login_at di daftar akun admin tanpa reload.
		if err := SendDataToTopic(ctx, TopicAdminHR, data); err != nil {
			log.Printf("fcm: login refresh push failed: %v", err)
		}

	case events.ApplicationMoved:
		app := event.Application
		if app == nil {
			return
		}
		data := map[string]string{
			"channel": "recruitment",
			"entity":  "application",
			"id":      strconv.FormatUint(uint64(app.ID), 10),
			"status":  string(app.Status),
		}
		if err := SendDataToTopic(ctx, TopicAdminHR, data); err != nil {
			log.Printf("fcm: application delta failed: %v", err)
		}
		title := "Status Lamaran Diperbarui"
		body := fmt.Sprintf("Lamaran Anda kini di tahap %s.", app.Status)
		if err := SendToTopic(ctx, TopicUser(app.ApplicantID), title, body, data); err != nil {
			log.Printf("fcm: applicant notify failed: %v", err)
		}

	case events.TerminationMoved:
		term := event.Termination
		if term == nil {
			return
		}
		data := map[string]string{
			"channel":  "termination",
			"entity":   "termination",
			"id":       strconv.FormatUint(uint64(term.ID), 10),
			"status":   string(term.Status),
			"progress": strconv.Itoa(term.Progress),
		}
		if err := SendDataToTopic(ctx, TopicAdminHR, data); err != nil {
			log.Printf("fcm: termination delta failed: %v", err)
		}
		title := "Pengajuan Terminasi"
		body := fmt.Sprintf("Pengajuan %s kini berstatus %s (%d%%).", term.RefCode, term.Status, term.Progress)
		if err := SendToTopic(ctx, TopicUser(term.AccountID), title, body, data); err != nil {
			log.Printf("fcm: termination notify failed: %v", err)
		}
	}
}

func letterData(letter *models.Letter) map[string]string {
	return map[string]string{
		"channel": "letters",
		"entity":  "letter",
		"id":      strconv.FormatUint(uint64(letter.ID), 10),
		"status":  string(letter.Status),
		"holder":  string(letter.Holder),
	}
}

func accountData(account *models.Account) map[string]string {
	return map[string]string{
		"channel": "staff",
		"entity":  "account",
		"id":      strconv.FormatUint(uint64(account.ID), 10),
		"status":  string(account.Status),
	}
}
