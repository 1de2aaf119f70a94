package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"inkwell/api/internal/auth"
	"inkwell/api/internal/authpw"
	"inkwell/api/internal/chunk"
	"inkwell/api/internal/config"
	"inkwell/api/internal/diff"
	"inkwell/api/internal/edit"
	"inkwell/api/internal/email"
	"inkwell/api/internal/export"
	"inkwell/api/internal/history"
	"inkwell/api/internal/library"
	"inkwell/api/internal/llm"
	"inkwell/api/internal/prompt"
	"inkwell/api/internal/render"
	"inkwell/api/internal/search"
	"inkwell/api/internal/store"
	"inkwell/api/internal/util"
)

type Session struct {
	Token        string
	RefreshToken string
	UserID       string
	UserName     string
	JTI          string
	ExpiresAt    time.Time
}

// dataStore is the subset of PostgresStore the service depends on.
type dataStore interface {
	GetUserByID(context.Context, string) (store.User, error)
	RevokeAccessToken(context.Context, string, time.Time) error
	IsAccessTokenRevoked(context.Context, string) (bool, error)

	ListDocumentsByUser(context.Context, string) ([]store.Document, error)
	GetDocument(context.Context, string) (store.Document, error)
	InsertDocument(context.Context, store.Document) error
	UpdateDocument(context.Context, string, string, string) error
	DeleteDocument(context.Context, string) error

	ListChatsByUser(context.Context, string) ([]store.Chat, error)
	GetChat(context.Context, string) (store.Chat, error)
	InsertChat(context.Context, store.Chat) error
	UpdateChatMessages(context.Context, string, []store.ChatMessage) error
	UpdateChatTitle(context.Context, string, string) error
	DeleteChat(context.Context, string) error

	ListBooksByUser(context.Context, string) ([]store.Book, error)
	GetBook(context.Context, string) (store.Book, error)
	InsertBook(context.Context, store.Book) error
	DeleteBook(context.Context, string) error

	Ping(ctx context.Context) error
}

// sessionStore holds refresh tokens; Redis-backed in production with a
// PostgreSQL fallback, both satisfy this.
type sessionStore interface {
	SaveRefreshSession(ctx context.Context, tokenHash string, user store.User, expiresAt time.Time) error
	LookupRefreshSession(ctx context.Context, tokenHash string) (store.User, error)
	RevokeRefreshSession(ctx context.Context, tokenHash string) error
}

// historyService is the revision-log surface the service uses.
type historyService interface {
	EnsureRepo(documentID, initial, author string) error
	Commit(documentID, content, author, message string) (history.CommitInfo, error)
	History(documentID string, limit int) ([]history.CommitInfo, error)
	ContentAt(documentID, hash string) (string, error)
	Remove(documentID string) error
}

type Service struct {
	cfg      config.Config
	store    dataStore
	sessions sessionStore
	history  historyService
	provider llm.Provider
	search   *search.Service
	library  *library.Service
	export   *export.Service
	authpw   *authpw.Service
	mailer   *email.Service
}

func New(
	cfg config.Config,
	dataStore *store.PostgresStore,
	sessions sessionStore,
	historySvc *history.Service,
	provider llm.Provider,
	searchSvc *search.Service,
	librarySvc *library.Service,
	authSvc *authpw.Service,
	mailer *email.Service,
) *Service {
	return &Service{
		cfg:      cfg,
		store:    dataStore,
		sessions: sessions,
		history:  historySvc,
		provider: provider,
		search:   searchSvc,
		library:  librarySvc,
		export:   export.NewService(),
		authpw:   authSvc,
		mailer:   mailer,
	}
}

// AuthPasswordService exposes the email/password auth service to the HTTP layer.
func (s *Service) AuthPasswordService() *authpw.Service {
	return s.authpw
}

// Mailer exposes the email service to the HTTP layer.
func (s *Service) Mailer() *email.Service {
	return s.mailer
}

// SMTPConfigured reports whether outbound email is available.
func (s *Service) SMTPConfigured() bool {
	return s.mailer != nil && s.mailer.IsConfigured()
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// ── Sessions ──

// CreateSession issues an access/refresh token pair for a signed-in user.
func (s *Service) CreateSession(ctx context.Context, userID string) (Session, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return Session{}, err
	}
	return s.issueSession(ctx, user)
}

// Refresh rotates a refresh token: the old one is revoked and a fresh
// pair is issued.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	tokenHash := auth.HashToken(refreshToken)
	user, err := s.sessions.LookupRefreshSession(ctx, tokenHash)
	if err != nil {
		return Session{}, err
	}
	if err := s.sessions.RevokeRefreshSession(ctx, tokenHash); err != nil {
		return Session{}, err
	}
	return s.issueSession(ctx, user)
}

func (s *Service) issueSession(ctx context.Context, user store.User) (Session, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.AccessTTL)
	jti := util.NewID("jti")

	token, err := auth.IssueToken([]byte(s.cfg.JWTSecret), auth.Claims{
		Sub:  user.ID,
		Name: user.DisplayName,
		JTI:  jti,
		Exp:  expiresAt.Unix(),
	})
	if err != nil {
		return Session{}, err
	}

	refresh := util.NewID("rft") + util.NewID("")
	refreshExpires := now.Add(s.cfg.RefreshTTL)
	if err := s.sessions.SaveRefreshSession(ctx, auth.HashToken(refresh), user, refreshExpires); err != nil {
		return Session{}, err
	}

	return Session{
		Token:        token,
		RefreshToken: refresh,
		UserID:       user.ID,
		UserName:     user.DisplayName,
		JTI:          jti,
		ExpiresAt:    expiresAt,
	}, nil
}

func (s *Service) SessionFromToken(ctx context.Context, token string) (Session, error) {
	claims, err := auth.ParseToken([]byte(s.cfg.JWTSecret), token)
	if err != nil {
		return Session{}, err
	}
	revoked, err := s.store.IsAccessTokenRevoked(ctx, claims.JTI)
	if err != nil {
		return Session{}, err
	}
	if revoked {
		return Session{}, auth.ErrInvalidToken
	}

	return Session{
		Token:     token,
		UserID:    claims.Sub,
		UserName:  claims.Name,
		JTI:       claims.JTI,
		ExpiresAt: time.Unix(claims.Exp, 0),
	}, nil
}

func (s *Service) Logout(ctx context.Context, session Session, refreshToken string) error {
	if session.JTI != "" {
		_ = s.store.RevokeAccessToken(ctx, session.JTI, session.ExpiresAt)
	}
	if refreshToken != "" {
		_ = s.sessions.RevokeRefreshSession(ctx, auth.HashToken(refreshToken))
	}
	return nil
}

// ── Documents ──

func (s *Service) ListDocuments(ctx context.Context, session Session) ([]map[string]any, error) {
	documents, err := s.store.ListDocumentsByUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	items := make([]map[string]any, 0, len(documents))
	for _, d := range documents {
		items = append(items, documentSummary(d))
	}
	return items, nil
}

func (s *Service) CreateDocument(ctx context.Context, session Session, title, content string) (map[string]any, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required", nil)
	}

	doc := store.Document{
		ID:      util.NewID("doc"),
		UserID:  session.UserID,
		Title:   title,
		Content: content,
	}
	if err := s.store.InsertDocument(ctx, doc); err != nil {
		return nil, err
	}
	if err := s.history.EnsureRepo(doc.ID, content, session.UserName); err != nil {
		return nil, fmt.Errorf("init document history: %w", err)
	}
	s.search.IndexDocument(search.DocumentRecord{
		ID:      doc.ID,
		UserID:  doc.UserID,
		Title:   doc.Title,
		Content: doc.Content,
	})

	return documentPayload(doc), nil
}

// getOwnedDocument loads a document and enforces per-user ownership.
func (s *Service) getOwnedDocument(ctx context.Context, session Session, documentID string) (store.Document, error) {
	doc, err := s.store.GetDocument(ctx, documentID)
	if err != nil {
		return store.Document{}, err
	}
	if doc.UserID != session.UserID {
		return store.Document{}, domainError(http.StatusNotFound, "NOT_FOUND", "Not found", nil)
	}
	return doc, nil
}

func (s *Service) GetDocument(ctx context.Context, session Session, documentID string) (map[string]any, error) {
	doc, err := s.getOwnedDocument(ctx, session, documentID)
	if err != nil {
		return nil, err
	}
	return documentPayload(doc), nil
}

func (s *Service) UpdateDocument(ctx context.Context, session Session, documentID, title, content string) (map[string]any, error) {
	doc, err := s.getOwnedDocument(ctx, session, documentID)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = doc.Title
	}
	if err := s.store.UpdateDocument(ctx, doc.ID, title, content); err != nil {
		return nil, err
	}

	commit, err := s.history.Commit(doc.ID, content, session.UserName, "Save document")
	if err != nil {
		return nil, fmt.Errorf("commit document revision: %w", err)
	}

	s.search.IndexDocument(search.DocumentRecord{
		ID:      doc.ID,
		UserID:  doc.UserID,
		Title:   title,
		Content: content,
	})

	doc.Title = title
	doc.Content = content
	payload := documentPayload(doc)
	payload["commit"] = commit
	return payload, nil
}

func (s *Service) DeleteDocument(ctx context.Context, session Session, documentID string) error {
	doc, err := s.getOwnedDocument(ctx, session, documentID)
	if err != nil {
		return err
	}
	if err := s.store.DeleteDocument(ctx, doc.ID); err != nil {
		return err
	}
	_ = s.history.Remove(doc.ID)
	s.search.DeleteDocument(doc.ID)
	return nil
}

// DocumentHTML renders the stored Markdown (or a historical revision)
// to editor-ready HTML with math placeholders.
func (s *Service) DocumentHTML(ctx context.Context, session Session, documentID, version string) (map[string]any, error) {
	doc, err := s.getOwnedDocument(ctx, session, documentID)
	if err != nil {
		return nil, err
	}

	content := doc.Content
	if version != "" && version != "latest" {
		content, err = s.history.ContentAt(doc.ID, version)
		if err != nil {
			return nil, domainError(http.StatusNotFound, "NOT_FOUND", "Revision not found", nil)
		}
	}

	return map[string]any{
		"id":    doc.ID,
		"title": doc.Title,
		"html":  render.ToHTML(content),
	}, nil
}

func (s *Service) DocumentHistory(ctx context.Context, session Session, documentID string, limit int) (map[string]any, error) {
	doc, err := s.getOwnedDocument(ctx, session, documentID)
	if err != nil {
		return nil, err
	}
	commits, err := s.history.History(doc.ID, limit)
	if err != nil {
		return nil, err
	}
	return map[string]any{"documentId": doc.ID, "commits": commits}, nil
}

// CompareDocument diffs two revisions (or a revision against the
// current content when to == "latest").
func (s *Service) CompareDocument(ctx context.Context, session Session, documentID, fromHash, toHash string) (map[string]any, error) {
	doc, err := s.getOwnedDocument(ctx, session, documentID)
	if err != nil {
		return nil, err
	}
	if fromHash == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "from is required", nil)
	}

	before, err := s.history.ContentAt(doc.ID, fromHash)
	if err != nil {
		return nil, domainError(http.StatusNotFound, "NOT_FOUND", "Revision not found", nil)
	}

	after := doc.Content
	if toHash != "" && toHash != "latest" {
		after, err = s.history.ContentAt(doc.ID, toHash)
		if err != nil {
			return nil, domainError(http.StatusNotFound, "NOT_FOUND", "Revision not found", nil)
		}
	}

	hunks, truncated := diff.TextDiffWithLimit(before, after, 0)
	return map[string]any{
		"documentId": doc.ID,
		"from":       fromHash,
		"to":         toHash,
		"hunks":      hunks,
		"truncated":  truncated,
		"stats":      diff.DiffStats(before, after),
	}, nil
}

func (s *Service) ExportDocument(ctx context.Context, session Session, documentID, version string, format export.Format) (*export.Result, error) {
	doc, err := s.getOwnedDocument(ctx, session, documentID)
	if err != nil {
		return nil, err
	}

	content := doc.Content
	if version != "" && version != "latest" {
		content, err = s.history.ContentAt(doc.ID, version)
		if err != nil {
			return nil, domainError(http.StatusNotFound, "NOT_FOUND", "Revision not found", nil)
		}
	}

	return s.export.Export(export.Document{
		Title:     doc.Title,
		Content:   content,
		Author:    session.UserName,
		UpdatedAt: doc.UpdatedAt,
	}, format)
}

// ApplyEdits runs an accepted edit batch against the stored document,
// persists the result, and records a history revision.
func (s *Service) ApplyEdits(ctx context.Context, session Session, documentID string, edits []edit.Operation, summary string) (map[string]any, error) {
	doc, err := s.getOwnedDocument(ctx, session, documentID)
	if err != nil {
		return nil, err
	}
	if len(edits) == 0 {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "edits are required", nil)
	}

	updated := edit.Apply(doc.Content, edits)
	if err := s.store.UpdateDocument(ctx, doc.ID, doc.Title, updated); err != nil {
		return nil, err
	}

	message := strings.TrimSpace(summary)
	if message == "" {
		message = "Apply assistant edits"
	}
	commit, err := s.history.Commit(doc.ID, updated, session.UserName, message)
	if err != nil {
		return nil, fmt.Errorf("commit document revision: %w", err)
	}

	s.search.IndexDocument(search.DocumentRecord{
		ID:      doc.ID,
		UserID:  doc.UserID,
		Title:   doc.Title,
		Content: updated,
	})

	doc.Content = updated
	payload := documentPayload(doc)
	payload["commit"] = commit
	return payload, nil
}

// ── Chats ──

func (s *Service) ListChats(ctx context.Context, session Session) ([]map[string]any, error) {
	chats, err := s.store.ListChatsByUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	items := make([]map[string]any, 0, len(chats))
	for _, c := range chats {
		items = append(items, map[string]any{
			"id":           c.ID,
			"title":        c.Title,
			"messageCount": len(c.Messages),
			"createdAt":    c.CreatedAt,
			"updatedAt":    c.UpdatedAt,
		})
	}
	return items, nil
}

func (s *Service) CreateChat(ctx context.Context, session Session, title string) (map[string]any, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "New chat"
	}
	c := store.Chat{
		ID:       util.NewID("chat"),
		UserID:   session.UserID,
		Title:    title,
		Messages: []store.ChatMessage{},
	}
	if err := s.store.InsertChat(ctx, c); err != nil {
		return nil, err
	}
	return chatPayload(c), nil
}

func (s *Service) getOwnedChat(ctx context.Context, session Session, chatID string) (store.Chat, error) {
	c, err := s.store.GetChat(ctx, chatID)
	if err != nil {
		return store.Chat{}, err
	}
	if c.UserID != session.UserID {
		return store.Chat{}, domainError(http.StatusNotFound, "NOT_FOUND", "Not found", nil)
	}
	return c, nil
}

func (s *Service) GetChat(ctx context.Context, session Session, chatID string) (map[string]any, error) {
	c, err := s.getOwnedChat(ctx, session, chatID)
	if err != nil {
		return nil, err
	}
	return chatPayload(c), nil
}

func (s *Service) RenameChat(ctx context.Context, session Session, chatID, title string) (map[string]any, error) {
	c, err := s.getOwnedChat(ctx, session, chatID)
	if err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required", nil)
	}
	if err := s.store.UpdateChatTitle(ctx, c.ID, title); err != nil {
		return nil, err
	}
	c.Title = title
	return chatPayload(c), nil
}

func (s *Service) DeleteChat(ctx context.Context, session Session, chatID string) error {
	c, err := s.getOwnedChat(ctx, session, chatID)
	if err != nil {
		return err
	}
	return s.store.DeleteChat(ctx, c.ID)
}

// SendMessage runs the full assistant turn: the target document is
// chunked and serialized, the prompt is built around the user message,
// the provider's reply is parsed as prose or an edit envelope, and both
// turns are appended to the chat log.
func (s *Service) SendMessage(ctx context.Context, session Session, chatID, documentID, content string) (map[string]any, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "message is required", nil)
	}

	c, err := s.getOwnedChat(ctx, session, chatID)
	if err != nil {
		return nil, err
	}
	doc, err := s.getOwnedDocument(ctx, session, documentID)
	if err != nil {
		return nil, err
	}

	chunks := chunk.Split(doc.Content)
	docContext, idList := chunk.Serialize(chunks)
	userPrompt, policy := prompt.Build(docContext, idList, content)

	historyTurns := make([]llm.Message, 0, len(c.Messages))
	for _, m := range c.Messages {
		historyTurns = append(historyTurns, llm.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := s.provider.Chat(ctx, policy, historyTurns, userPrompt)
	if err != nil {
		return nil, mapProviderError(err)
	}

	parsed := edit.ParseResponse(reply)

	userMsg := store.ChatMessage{
		ID:      util.NewID("msg"),
		Role:    llm.RoleUser,
		Status:  "default",
		Content: content,
	}
	modelMsg := store.ChatMessage{
		ID:      util.NewID("msg"),
		Role:    llm.RoleModel,
		Status:  "default",
		Content: parsed.Content,
		Preview: parsed.Preview,
	}
	if len(parsed.Edits) > 0 {
		encoded, err := json.Marshal(parsed.Edits)
		if err != nil {
			return nil, fmt.Errorf("encode edits: %w", err)
		}
		modelMsg.Edits = encoded
	}

	messages := append(c.Messages, userMsg, modelMsg)
	if err := s.store.UpdateChatMessages(ctx, c.ID, messages); err != nil {
		return nil, err
	}

	return map[string]any{
		"chatId":  c.ID,
		"message": modelMsg,
	}, nil
}

// SetMessageStatus marks an edit-bearing message as used or dismissed.
func (s *Service) SetMessageStatus(ctx context.Context, session Session, chatID, messageID, status string) (map[string]any, error) {
	if status != "used" && status != "dismissed" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "status must be 'used' or 'dismissed'", nil)
	}
	c, err := s.getOwnedChat(ctx, session, chatID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range c.Messages {
		if c.Messages[i].ID == messageID {
			c.Messages[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return nil, domainError(http.StatusNotFound, "NOT_FOUND", "Message not found", nil)
	}

	if err := s.store.UpdateChatMessages(ctx, c.ID, c.Messages); err != nil {
		return nil, err
	}
	return map[string]any{"chatId": c.ID, "messageId": messageID, "status": status}, nil
}

// ── Books ──

func (s *Service) ListBooks(ctx context.Context, session Session) ([]map[string]any, error) {
	books, err := s.store.ListBooksByUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	items := make([]map[string]any, 0, len(books))
	for _, b := range books {
		items = append(items, bookPayload(b))
	}
	return items, nil
}

// UploadBook stores the file in object storage and records the book.
func (s *Service) UploadBook(ctx context.Context, session Session, title, author, filename, contentType string, r io.Reader, size int64) (map[string]any, error) {
	if s.library == nil {
		return nil, domainError(http.StatusServiceUnavailable, "LIBRARY_UNAVAILABLE", "Library storage not configured", nil)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required", nil)
	}

	b := store.Book{
		ID:     util.NewID("book"),
		UserID: session.UserID,
		Title:  title,
		Author: strings.TrimSpace(author),
	}
	objectPath, err := s.library.Upload(ctx, session.UserID, b.ID, filename, contentType, r, size)
	if err != nil {
		return nil, fmt.Errorf("store book file: %w", err)
	}
	b.StoragePath = objectPath

	if err := s.store.InsertBook(ctx, b); err != nil {
		_ = s.library.Remove(ctx, objectPath)
		return nil, err
	}

	s.search.IndexBook(search.BookRecord{
		ID:     b.ID,
		UserID: b.UserID,
		Title:  b.Title,
		Author: b.Author,
	})

	return bookPayload(b), nil
}

func (s *Service) BookDownloadURL(ctx context.Context, session Session, bookID string) (map[string]any, error) {
	if s.library == nil {
		return nil, domainError(http.StatusServiceUnavailable, "LIBRARY_UNAVAILABLE", "Library storage not configured", nil)
	}
	b, err := s.getOwnedBook(ctx, session, bookID)
	if err != nil {
		return nil, err
	}
	url, err := s.library.PresignedURL(ctx, b.StoragePath, 15*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("presign book file: %w", err)
	}
	return map[string]any{"id": b.ID, "url": url}, nil
}

func (s *Service) DeleteBook(ctx context.Context, session Session, bookID string) error {
	b, err := s.getOwnedBook(ctx, session, bookID)
	if err != nil {
		return err
	}
	if err := s.store.DeleteBook(ctx, b.ID); err != nil {
		return err
	}
	if s.library != nil && b.StoragePath != "" {
		_ = s.library.Remove(ctx, b.StoragePath)
	}
	s.search.DeleteBook(b.ID)
	return nil
}

func (s *Service) getOwnedBook(ctx context.Context, session Session, bookID string) (store.Book, error) {
	b, err := s.store.GetBook(ctx, bookID)
	if err != nil {
		return store.Book{}, err
	}
	if b.UserID != session.UserID {
		return store.Book{}, domainError(http.StatusNotFound, "NOT_FOUND", "Not found", nil)
	}
	return b, nil
}

// ── Search ──

func (s *Service) Search(ctx context.Context, session Session, text, filterType string, limit, offset int) search.Response {
	return s.search.Search(search.Query{
		Text:       text,
		UserID:     session.UserID,
		FilterType: search.ResultType(filterType),
		Limit:      limit,
		Offset:     offset,
	})
}

// ── payload helpers ──

func documentSummary(d store.Document) map[string]any {
	return map[string]any{
		"id":        d.ID,
		"title":     d.Title,
		"createdAt": d.CreatedAt,
		"updatedAt": d.UpdatedAt,
	}
}

func documentPayload(d store.Document) map[string]any {
	payload := documentSummary(d)
	payload["content"] = d.Content
	return payload
}

func chatPayload(c store.Chat) map[string]any {
	messages := c.Messages
	if messages == nil {
		messages = []store.ChatMessage{}
	}
	return map[string]any{
		"id":        c.ID,
		"title":     c.Title,
		"messages":  messages,
		"createdAt": c.CreatedAt,
		"updatedAt": c.UpdatedAt,
	}
}

func bookPayload(b store.Book) map[string]any {
	return map[string]any{
		"id":        b.ID,
		"title":     b.Title,
		"author":    b.Author,
		"createdAt": b.CreatedAt,
	}
}

func mapProviderError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, llm.ErrUnauthorized):
		return domainError(http.StatusBadGateway, "LLM_UNAUTHORIZED", "Language model rejected the configured credentials", nil)
	case errors.Is(err, llm.ErrRateLimited):
		return domainError(http.StatusTooManyRequests, "LLM_RATE_LIMITED", "Language model is rate limiting requests", nil)
	case errors.Is(err, llm.ErrUnavailable):
		return domainError(http.StatusBadGateway, "LLM_UNAVAILABLE", "Language model is unavailable", nil)
	case errors.Is(err, llm.ErrEmptyReply):
		return domainError(http.StatusBadGateway, "LLM_EMPTY", "Language model returned an empty response", nil)
	default:
		return err
	}
}
