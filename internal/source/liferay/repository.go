// Package liferay reads journal content out of a Liferay portal database.
package liferay

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"liferay2wp/internal/domain"
	"liferay2wp/internal/locale"
)

// Config holds the scope of the extraction: which portal instance and
// site to read, and which structures to leave behind.
type Config struct {
	CompanyID           int64
	GroupID             int64
	DefaultLocale       string
	OnlyApproved        bool
	BatchSize           int
	ExcludeStructureIDs []string
}

// Repository streams articles, folders, users and templates from the
// Liferay schema over a shared connection pool.
type Repository struct {
	db     *sqlx.DB
	cfg    Config
	logger *slog.Logger
}

func NewRepository(db *sqlx.DB, cfg Config, logger *slog.Logger) *Repository {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	return &Repository{
		db:     db,
		cfg:    cfg,
		logger: logger.With("component", "liferay"),
	}
}

type articleRow struct {
	ID              int64          `db:"id"`
	ArticleID       string         `db:"articleId"`
	Version         float64        `db:"version"` // stored as DOUBLE
	TitleRaw        string         `db:"titleRaw"`
	ContentXML      string         `db:"contentXml"`
	URLTitle        sql.NullString `db:"urlTitle"`
	DescriptionRaw  sql.NullString `db:"descriptionRaw"`
	ResourcePrimKey int64          `db:"resourcePrimKey"`
	UserID          int64          `db:"userId"`
	FolderID        sql.NullInt64  `db:"folderId"`
	StructureID     sql.NullString `db:"structureId"`
	TemplateID      sql.NullString `db:"templateId"`
	CreateDate      time.Time      `db:"createDate"`
	ModifiedDate    time.Time      `db:"modifiedDate"`
}

// ScanArticles walks the journal in stable modifiedDate order, one batch
// at a time, yielding only the newest version of each articleId. The
// callback receives fully enriched articles (resolved title, categories,
// tags); returning an error aborts the scan. Context cancellation
// between batches stops the scan cleanly.
func (r *Repository) ScanArticles(ctx context.Context, fn func(domain.Article) error) error {
	offset := 0
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("scan cancelled", "offset", offset)
			return nil
		default:
		}

		query, args, err := r.buildArticleQuery(offset)
		if err != nil {
			return fmt.Errorf("build article query: %w", err)
		}

		var rows []articleRow
		if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
			return fmt.Errorf("select articles at offset %d: %w", offset, err)
		}
		if len(rows) == 0 {
			return nil
		}

		for _, row := range rows {
			article, err := r.enrich(ctx, row)
			if err != nil {
				return err
			}
			if err := fn(article); err != nil {
				return err
			}
		}

		offset += len(rows)
		r.logger.Debug("scanned batch", "offset", offset, "size", len(rows))
	}
}

// buildArticleQuery assembles the latest-version page query. Structure
// exclusion has to cover two shapes: the ddmstructurelink row (numeric
// structureId) written by newer content, and the legacy string column on
// journalarticle itself.
func (r *Repository) buildArticleQuery(offset int) (string, []any, error) {
	approvalWhere := ""
	if r.cfg.OnlyApproved {
		approvalWhere = "AND a.status = 0" // 0 = approved
	}

	excludeWhere := ""
	if len(r.cfg.ExcludeStructureIDs) > 0 {
		excludeWhere = `AND (sl.structureId IS NULL OR sl.structureId NOT IN (:excludeNum))
  AND (a.structureId IS NULL OR a.structureId NOT IN (:excludeStr))`
	}

	query := fmt.Sprintf(`
SELECT a.id_ AS id,
       a.articleId AS articleId,
       a.version AS version,
       a.title AS titleRaw,
       a.content AS contentXml,
       a.urlTitle AS urlTitle,
       a.description AS descriptionRaw,
       a.resourcePrimKey AS resourcePrimKey,
       a.userId AS userId,
       a.folderId AS folderId,
       a.structureId AS structureId,
       a.templateId AS templateId,
       a.createDate AS createDate,
       a.modifiedDate AS modifiedDate
FROM journalarticle a
LEFT JOIN classname_ cn ON cn.value = 'com.liferay.portlet.journal.model.JournalArticle'
LEFT JOIN ddmstructurelink sl ON sl.classNameId = cn.classNameId AND sl.classPK = a.resourcePrimKey
JOIN (
  SELECT articleId, MAX(version) AS maxver
  FROM journalarticle
  WHERE companyId = :companyId AND groupId = :groupId %s
  GROUP BY articleId
) latest ON latest.articleId = a.articleId AND latest.maxver = a.version
WHERE a.companyId = :companyId AND a.groupId = :groupId %s %s
ORDER BY a.modifiedDate ASC
LIMIT :limit OFFSET :offset`, approvalWhere, approvalWhere, excludeWhere)

	params := map[string]any{
		"companyId": r.cfg.CompanyID,
		"groupId":   r.cfg.GroupID,
		"limit":     r.cfg.BatchSize,
		"offset":    offset,
	}
	if len(r.cfg.ExcludeStructureIDs) > 0 {
		params["excludeNum"] = numericIDs(r.cfg.ExcludeStructureIDs)
		params["excludeStr"] = r.cfg.ExcludeStructureIDs
	}

	query, args, err := sqlx.Named(query, params)
	if err != nil {
		return "", nil, err
	}
	query, args, err = sqlx.In(query, args...)
	if err != nil {
		return "", nil, err
	}
	return r.db.Rebind(query), args, nil
}

func (r *Repository) enrich(ctx context.Context, row articleRow) (domain.Article, error) {
	categories, err := r.assetNames(ctx, categoriesSQL, row.ResourcePrimKey)
	if err != nil {
		return domain.Article{}, fmt.Errorf("load categories for %s: %w", row.ArticleID, err)
	}
	tags, err := r.assetNames(ctx, tagsSQL, row.ResourcePrimKey)
	if err != nil {
		return domain.Article{}, fmt.Errorf("load tags for %s: %w", row.ArticleID, err)
	}

	article := domain.Article{
		ID:              row.ID,
		ArticleID:       row.ArticleID,
		Version:         int(row.Version),
		Title:           locale.Resolve(row.TitleRaw, r.cfg.DefaultLocale),
		ContentXML:      row.ContentXML,
		ResourcePrimKey: row.ResourcePrimKey,
		UserID:          row.UserID,
		Categories:      categories,
		Tags:            tags,
		CreateDate:      row.CreateDate,
		ModifiedDate:    row.ModifiedDate,
	}
	if row.URLTitle.Valid && row.URLTitle.String != "" {
		article.URLTitle = &row.URLTitle.String
	}
	if row.DescriptionRaw.Valid {
		if desc := locale.Resolve(row.DescriptionRaw.String, r.cfg.DefaultLocale); desc != "" {
			article.Description = &desc
		}
	}
	if row.FolderID.Valid && row.FolderID.Int64 != 0 {
		article.FolderID = &row.FolderID.Int64
	}
	if row.StructureID.Valid && row.StructureID.String != "" {
		article.StructureID = &row.StructureID.String
	}
	if row.TemplateID.Valid && row.TemplateID.String != "" {
		article.TemplateID = &row.TemplateID.String
	}
	return article, nil
}

const categoriesSQL = `SELECT c.name FROM assetcategory c
JOIN assetentries_assetcategories aec ON aec.categoryId = c.categoryId
JOIN assetentry e ON e.entryId = aec.entryId
WHERE e.classPK = ?`

const tagsSQL = `SELECT t.name FROM assettag t
JOIN assetentries_assettags aet ON aet.tagId = t.tagId
JOIN assetentry e ON e.entryId = aet.entryId
WHERE e.classPK = ?`

func (r *Repository) assetNames(ctx context.Context, query string, resourcePrimKey int64) ([]string, error) {
	var names []string
	if err := r.db.SelectContext(ctx, &names, query, resourcePrimKey); err != nil {
		return nil, err
	}
	return names, nil
}

// Folders returns every journal folder of the group keyed by ID. Parent
// ID 0 marks a root folder.
func (r *Repository) Folders(ctx context.Context) (map[int64]domain.Folder, error) {
	query := `SELECT folderId, name, parentFolderId FROM journalfolder WHERE groupId = ?`

	var rows []struct {
		FolderID       int64  `db:"folderId"`
		Name           string `db:"name"`
		ParentFolderID int64  `db:"parentFolderId"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, r.cfg.GroupID); err != nil {
		return nil, fmt.Errorf("select folders: %w", err)
	}

	folders := make(map[int64]domain.Folder, len(rows))
	for _, row := range rows {
		folders[row.FolderID] = domain.Folder{
			FolderID:       row.FolderID,
			Name:           row.Name,
			ParentFolderID: row.ParentFolderID,
		}
	}
	return folders, nil
}

// User looks up the author behind a userId. A missing row yields a
// synthetic placeholder identity so migration never stalls on deleted
// accounts.
func (r *Repository) User(ctx context.Context, userID int64) (domain.User, error) {
	query := `SELECT screenName, emailAddress, firstName, middleName, lastName FROM user_ WHERE userId = ?`

	var row struct {
		ScreenName   string         `db:"screenName"`
		EmailAddress string         `db:"emailAddress"`
		FirstName    sql.NullString `db:"firstName"`
		MiddleName   sql.NullString `db:"middleName"`
		LastName     sql.NullString `db:"lastName"`
	}
	err := r.db.GetContext(ctx, &row, query, userID)
	if err == sql.ErrNoRows {
		return domain.User{
			ScreenName:   fmt.Sprintf("user%d", userID),
			EmailAddress: fmt.Sprintf("user%d@example.com", userID),
			FullName:     "Liferay User",
		}, nil
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("select user %d: %w", userID, err)
	}

	var parts []string
	for _, p := range []sql.NullString{row.FirstName, row.MiddleName, row.LastName} {
		if p.Valid && strings.TrimSpace(p.String) != "" {
			parts = append(parts, p.String)
		}
	}
	full := strings.Join(parts, " ")
	if full == "" {
		full = row.ScreenName
	}

	return domain.User{
		ScreenName:   row.ScreenName,
		EmailAddress: row.EmailAddress,
		FullName:     full,
	}, nil
}

// Template fetches a DDM template by id or key. A nil result means no
// such template.
func (r *Repository) Template(ctx context.Context, templateID string) (*domain.Template, error) {
	query := `SELECT templateId, name, script, language FROM ddmtemplate WHERE templateId = ? OR templateKey = ? LIMIT 1`

	var row struct {
		TemplateID int64          `db:"templateId"`
		Name       string         `db:"name"`
		Script     string         `db:"script"`
		Language   sql.NullString `db:"language"`
	}
	err := r.db.GetContext(ctx, &row, query, templateID, templateID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select template %s: %w", templateID, err)
	}

	return &domain.Template{
		TemplateID: strconv.FormatInt(row.TemplateID, 10),
		Name:       row.Name,
		Script:     row.Script,
		Language:   templateLanguage(row.Language.String, row.Script),
	}, nil
}

// templateLanguage picks ftl or vm, trusting the language column before
// guessing from the script body.
func templateLanguage(column, script string) string {
	lang := strings.ToLower(column)
	switch {
	case strings.Contains(lang, "ftl"), strings.Contains(lang, "freemarker"):
		return "ftl"
	case strings.Contains(lang, "vm"), strings.Contains(lang, "velocity"):
		return "vm"
	}

	if strings.Contains(script, "<#") || strings.Contains(script, "${") {
		return "ftl"
	}
	if strings.Contains(script, "#set") || strings.Contains(script, "#if") || strings.Contains(script, "#foreach") {
		return "vm"
	}
	return "ftl"
}

func numericIDs(ids []string) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if n, err := strconv.ParseInt(id, 10, 64); err == nil {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		// keep the IN clause valid even when no ID parses as a number
		out = append(out, -1)
	}
	return out
}
