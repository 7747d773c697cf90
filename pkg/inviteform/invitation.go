// Package inviteform davetiye, katılım yanıtı (RSVP) ve ziyaretçi defteri
// gönderimlerini doğrular ve normalize eder.
//
// Davetiye kuralları: templateId katalogda bulunmalı ve türü gönderilen türle
// eşleşmeli; türe özgü alanlar extraData altında okunur; etkinlik tarihi
// doğrulayıcının saat dilimindeki bugünden kesinlikle sonra olmalıdır.
// Hatalar ilk hatada durmadan biriktirilir.
package inviteform

import (
	"fmt"
	"strconv"
	"time"

	"chodae.link/models"
	"chodae.link/pkg/templatecatalog"
)

// legacyTypes eski tür adlarını güncel adlara eşler.
var legacyTypes = map[string]models.InvitationType{
	"doljanchi": models.InvitationTypeFirstBirthday,
	"hwangap":   models.InvitationTypeSixtiethBirthday,
}

// Document doğrulanmış ve normalize edilmiş davetiye içeriğidir.
// Alan adları models.Invitation ile aynıdır; ExtraData metodu da aynı adlı alana kopyalanır.
// RequestedStatus gönderilmediyse boştur; varsayılanı kaydı oluşturan katman belirler.
type Document struct {
	TemplateID      string
	Type            models.InvitationType
	Title           string
	Greeting        string
	EventDate       string
	EventTime       string
	VenueName       string
	VenueAddress    string
	HostName        string
	RequestedStatus models.InvitationStatus
	Details         Details
}

// ExtraData türe özgü alanları kalıcı haritaya çevirir.
func (d Document) ExtraData() models.ExtraData {
	if d.Details == nil {
		return models.ExtraData{}
	}
	return d.Details.ExtraData()
}

// Payload belgeyi yeniden doğrulanabilir tipsiz forma çevirir.
func (d Document) Payload() map[string]any {
	extra := make(map[string]any)
	for k, v := range d.ExtraData() {
		extra[k] = v
	}
	p := map[string]any{
		"templateId":   d.TemplateID,
		"type":         string(d.Type),
		"title":        d.Title,
		"eventDate":    d.EventDate,
		"eventTime":    d.EventTime,
		"venueName":    d.VenueName,
		"venueAddress": d.VenueAddress,
		"extraData":    extra,
	}
	if d.Greeting != "" {
		p["greeting"] = d.Greeting
	}
	if d.HostName != "" {
		p["hostName"] = d.HostName
	}
	if d.RequestedStatus != "" {
		p["status"] = string(d.RequestedStatus)
	}
	return p
}

// FromInvitation kayıtlı bir davetiyeyi doğrulanabilir forma çevirir.
func FromInvitation(inv *models.Invitation) map[string]any {
	extra := make(map[string]any, len(inv.ExtraData))
	for k, v := range inv.ExtraData {
		extra[k] = v
	}
	return map[string]any{
		"templateId":   inv.TemplateID,
		"type":         string(inv.Type),
		"title":        inv.Title,
		"greeting":     inv.Greeting,
		"eventDate":    inv.EventDate,
		"eventTime":    inv.EventTime,
		"venueName":    inv.VenueName,
		"venueAddress": inv.VenueAddress,
		"hostName":     inv.HostName,
		"extraData":    extra,
	}
}

// Validator davetiye gönderimlerini katalog ve saate göre doğrular.
type Validator struct {
	Catalog  *templatecatalog.Catalog
	Location *time.Location
	Now      func() time.Time
}

// NewValidator nil parametreler için varsayılanları kullanır:
// gömülü katalog, UTC ve time.Now.
func NewValidator(catalog *templatecatalog.Catalog, loc *time.Location, now func() time.Time) *Validator {
	if catalog == nil {
		catalog = templatecatalog.Default()
	}
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Validator{Catalog: catalog, Location: loc, Now: now}
}

// today doğrulayıcının saat diliminde bugünün gece yarısıdır.
func (v *Validator) today() time.Time {
	y, m, d := v.Now().In(v.Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, v.Location)
}

// ValidateInvitation gönderimi doğrular. Hata durumunda *ValidationError döner.
func (v *Validator) ValidateInvitation(payload map[string]any) (Document, error) {
	errs := &ValidationError{}
	r := newReader(payload, "", errs)
	today := v.today()

	var doc Document
	doc.TemplateID = r.text("templateId", true, 64, "Please choose a template.")
	invType, typeOK := readType(r)
	doc.Type = invType

	if doc.TemplateID != "" {
		tpl, found := v.Catalog.ByID(doc.TemplateID)
		switch {
		case !found:
			r.fail("templateId", "Template does not exist.")
		case typeOK && tpl.Type != invType:
			r.fail("type", "Invitation type does not match the template type.")
		}
	}

	doc.Title = r.text("title", true, 100, "Please enter a title.")
	doc.Greeting = r.optionalText("greeting", 1000)
	doc.EventDate = readEventDate(r, today)
	doc.EventTime = readEventTime(r)
	doc.VenueName = r.text("venueName", true, 100, "Please enter the venue name.")
	doc.VenueAddress = r.text("venueAddress", true, 200, "Please enter the venue address.")
	doc.HostName = r.optionalText("hostName", 100)

	if status := r.optionalText("status", 0); status != "" {
		s := models.InvitationStatus(status)
		if s != models.InvitationStatusDraft && s != models.InvitationStatusPublished {
			r.fail("status", "Status must be draft or published.")
		}
		doc.RequestedStatus = s
	}

	extra := newReader(r.object("extraData"), "extraData", errs)
	if typeOK {
		doc.Details = v.readDetails(invType, extra, doc.HostName, today)
	}

	if err := errs.err(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func readType(r *reader) (models.InvitationType, bool) {
	raw := r.text("type", true, 0, "Please choose an invitation type.")
	if raw == "" {
		return "", false
	}
	if canonical, ok := legacyTypes[raw]; ok {
		return canonical, true
	}
	t := models.InvitationType(raw)
	for _, known := range models.InvitationTypes {
		if t == known {
			return t, true
		}
	}
	r.fail("type", fmt.Sprintf("Unknown invitation type %q.", raw))
	return "", false
}

func readEventDate(r *reader, today time.Time) string {
	s := r.text("eventDate", true, 0, "Please enter the event date.")
	if s == "" {
		return ""
	}
	date, ok := parseDate(s, today.Location())
	if !ok {
		r.fail("eventDate", "Date must be a valid YYYY-MM-DD date.")
		return s
	}
	if !date.After(today) {
		r.fail("eventDate", "Event date must be in the future.")
	}
	return s
}

// readEventTime saati HH:MM biçimine (sıfır dolgulu) normalize eder.
func readEventTime(r *reader) string {
	s := r.text("eventTime", true, 0, "Please enter the event time.")
	if s == "" {
		return ""
	}
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		r.fail("eventTime", "Time must be HH:MM (24-hour).")
		return s
	}
	hour, _ := strconv.Atoi(m[1]) // desen yalnızca rakam kabul eder
	return fmt.Sprintf("%02d:%s", hour, m[2])
}
