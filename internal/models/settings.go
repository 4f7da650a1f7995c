package models

// SettingsID is the fixed identifier of the singleton settings document.
// Writes upsert against this id so concurrent writers can never leave the
// collection empty or with two live documents.
const SettingsID = "company_settings"

// CompanySettings is the single live configuration document for site copy,
// theme and transactional-email branding. Every field is optional; the
// frontend and the PDF/email builders fall back to sensible defaults.
type CompanySettings struct {
	ID string `json:"id" bson:"id"`

	// Company identity
	CompanyName    string `json:"company_name" bson:"company_name"`
	CompanySlogan  string `json:"company_slogan" bson:"company_slogan"`
	CompanyAbout   string `json:"company_about" bson:"company_about"`
	LogoURL        string `json:"logo_url" bson:"logo_url"`
	FaviconURL     string `json:"favicon_url" bson:"favicon_url"`
	TaxNumber      string `json:"tax_number" bson:"tax_number"`
	TaxOffice      string `json:"tax_office" bson:"tax_office"`
	TradeRegistry  string `json:"trade_registry" bson:"trade_registry"`
	FoundedYear    string `json:"founded_year" bson:"founded_year"`
	EmployeeCount  string `json:"employee_count" bson:"employee_count"`
	ExportRegions  string `json:"export_regions" bson:"export_regions"`
	ReferenceNotes string `json:"reference_notes" bson:"reference_notes"`

	// Contact
	Email         string `json:"email" bson:"email"`
	Phone         string `json:"phone" bson:"phone"`
	Whatsapp      string `json:"whatsapp" bson:"whatsapp"`
	Fax           string `json:"fax" bson:"fax"`
	Address       string `json:"address" bson:"address"`
	City          string `json:"city" bson:"city"`
	Country       string `json:"country" bson:"country"`
	Website       string `json:"website" bson:"website"`
	MapsEmbedURL  string `json:"maps_embed_url" bson:"maps_embed_url"`
	WorkingHours  string `json:"working_hours" bson:"working_hours"`
	SupportEmail  string `json:"support_email" bson:"support_email"`
	SalesEmail    string `json:"sales_email" bson:"sales_email"`
	ContactPerson string `json:"contact_person" bson:"contact_person"`

	// Theme
	PrimaryColor    string `json:"primary_color" bson:"primary_color"`
	SecondaryColor  string `json:"secondary_color" bson:"secondary_color"`
	AccentColor     string `json:"accent_color" bson:"accent_color"`
	BackgroundColor string `json:"background_color" bson:"background_color"`
	TextColor       string `json:"text_color" bson:"text_color"`
	HeaderBgColor   string `json:"header_bg_color" bson:"header_bg_color"`
	FooterBgColor   string `json:"footer_bg_color" bson:"footer_bg_color"`
	ButtonColor     string `json:"button_color" bson:"button_color"`
	LinkColor       string `json:"link_color" bson:"link_color"`
	FontFamily      string `json:"font_family" bson:"font_family"`

	// Site copy
	HeroTitle         string `json:"hero_title" bson:"hero_title"`
	HeroSubtitle      string `json:"hero_subtitle" bson:"hero_subtitle"`
	HeroImageURL      string `json:"hero_image_url" bson:"hero_image_url"`
	HeroCTAText       string `json:"hero_cta_text" bson:"hero_cta_text"`
	AboutTitle        string `json:"about_title" bson:"about_title"`
	AboutText         string `json:"about_text" bson:"about_text"`
	ServicesTitle     string `json:"services_title" bson:"services_title"`
	ServicesText      string `json:"services_text" bson:"services_text"`
	FooterText        string `json:"footer_text" bson:"footer_text"`
	CopyrightText     string `json:"copyright_text" bson:"copyright_text"`
	AnnouncementText  string `json:"announcement_text" bson:"announcement_text"`
	QuoteFormTitle    string `json:"quote_form_title" bson:"quote_form_title"`
	QuoteFormSubtitle string `json:"quote_form_subtitle" bson:"quote_form_subtitle"`
	ContactFormTitle  string `json:"contact_form_title" bson:"contact_form_title"`
	MetaTitle         string `json:"meta_title" bson:"meta_title"`
	MetaDescription   string `json:"meta_description" bson:"meta_description"`
	MetaKeywords      string `json:"meta_keywords" bson:"meta_keywords"`

	// Social
	FacebookURL  string `json:"facebook_url" bson:"facebook_url"`
	InstagramURL string `json:"instagram_url" bson:"instagram_url"`
	TwitterURL   string `json:"twitter_url" bson:"twitter_url"`
	LinkedinURL  string `json:"linkedin_url" bson:"linkedin_url"`
	YoutubeURL   string `json:"youtube_url" bson:"youtube_url"`

	// Transactional email branding. Subject and greeting templates support
	// {quote_id} and {customer_name} placeholders.
	EmailHeaderColor      string `json:"email_header_color" bson:"email_header_color"`
	EmailFooterText       string `json:"email_footer_text" bson:"email_footer_text"`
	EmailLogoURL          string `json:"email_logo_url" bson:"email_logo_url"`
	QuoteEmailSubject     string `json:"quote_email_subject" bson:"quote_email_subject"`
	QuoteEmailGreeting    string `json:"quote_email_greeting" bson:"quote_email_greeting"`
	QuoteApprovedMessage  string `json:"quote_approved_message" bson:"quote_approved_message"`
	QuoteRejectedMessage  string `json:"quote_rejected_message" bson:"quote_rejected_message"`
	QuoteReviewingMessage string `json:"quote_reviewing_message" bson:"quote_reviewing_message"`

	// PDF terms; three default clauses apply when empty.
	Terms []string `json:"terms" bson:"terms"`
}
