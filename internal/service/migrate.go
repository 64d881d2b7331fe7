package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"liferay2wp/internal/convert"
	"liferay2wp/internal/domain"
	"liferay2wp/internal/slug"
)

// Config carries the routing and enrichment tables for one run.
type Config struct {
	SourceBaseURL string
	DefaultStatus string
	AuthorMap     map[int64]int
	TemplateMap   map[string]string
	CollectionMap map[string]string // structure ID -> destination collection
}

// MigrationService drives the migration one article at a time: transform,
// move media, enrich, create, checkpoint. A failure in one article never
// stops the run.
type MigrationService struct {
	source    ArticleSource
	folders   FolderSource
	users     UserSource
	templates TemplateSource
	media     MediaMigrator
	dest      Destination
	state     StateStore
	publisher Publisher
	logger    *slog.Logger
	config    Config
}

func NewMigrationService(
	source ArticleSource,
	folders FolderSource,
	users UserSource,
	templates TemplateSource,
	media MediaMigrator,
	dest Destination,
	state StateStore,
	publisher Publisher,
	logger *slog.Logger,
	cfg Config,
) *MigrationService {
	if cfg.DefaultStatus == "" {
		cfg.DefaultStatus = "draft"
	}
	return &MigrationService{
		source:    source,
		folders:   folders,
		users:     users,
		templates: templates,
		media:     media,
		dest:      dest,
		state:     state,
		publisher: publisher,
		logger:    logger.With("component", "migration"),
		config:    cfg,
	}
}

// Run migrates every pending article. The checkpoint file is flushed
// after each created post, so a crashed or cancelled run resumes where
// it stopped.
func (s *MigrationService) Run(ctx context.Context) (*domain.MigrationStats, error) {
	startTime := time.Now()
	s.logger.Info("starting migration")

	folders, err := s.folders.Folders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load folders: %w", err)
	}
	s.logger.Info("loaded folder tree", "folders", len(folders))

	st, err := s.state.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load migration state: %w", err)
	}
	s.logger.Info("loaded checkpoint", "completed", st.CompletedCount())

	stats := &domain.MigrationStats{}

	scanErr := s.source.ScanArticles(ctx, func(article domain.Article) error {
		stats.Processed++
		if err := s.migrateArticle(ctx, article, folders, st, stats); err != nil {
			stats.Errors++
			s.logger.Error("article failed",
				"article_id", article.ArticleID,
				"title", article.Title,
				"error", err,
			)
		}
		return nil
	})

	stats.Duration = time.Since(startTime)

	s.logger.Info("migration completed",
		"processed", stats.Processed,
		"migrated", stats.Migrated,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"media_uploaded", stats.MediaUploaded,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	if scanErr != nil {
		return stats, fmt.Errorf("scan articles: %w", scanErr)
	}
	return stats, nil
}

func (s *MigrationService) migrateArticle(ctx context.Context, article domain.Article, folders map[int64]domain.Folder, st *domain.MigrationState, stats *domain.MigrationStats) error {
	if st.IsCompleted(article.ArticleID) {
		s.logger.Info("skipping migrated article", "article_id", article.ArticleID)
		stats.Skipped++
		return nil
	}

	html, imageURLs := convert.ToHTML(article.ContentXML)

	html, linkMediaIDs := s.media.RewriteLinks(ctx, html, s.config.SourceBaseURL)
	stats.MediaUploaded += len(linkMediaIDs)

	var featured *int
	if len(imageURLs) > 0 {
		_, ids := s.media.EnsureUploaded(ctx, imageURLs)
		stats.MediaUploaded += len(ids)
		if len(ids) > 0 {
			featured = &ids[0]
		}
	}

	collection, routed := s.resolveCollection(article)

	extraTaxonomies := make(map[string][]int)

	var categories, tags []int
	if routed {
		// custom post types carry their own taxonomy pair
		catIDs, err := s.ensureTerms(ctx, collection+"_category", article.Categories)
		if err != nil {
			return err
		}
		if len(catIDs) > 0 {
			extraTaxonomies[collection+"_category"] = catIDs
		}
		tagIDs, err := s.ensureTerms(ctx, collection+"_tag", article.Tags)
		if err != nil {
			return err
		}
		if len(tagIDs) > 0 {
			extraTaxonomies[collection+"_tag"] = tagIDs
		}
	} else {
		var err error
		if categories, err = s.ensureTerms(ctx, "category", article.Categories); err != nil {
			return err
		}
		if tags, err = s.ensureTerms(ctx, "post_tag", article.Tags); err != nil {
			return err
		}
	}

	folderTerms, err := s.ensureFolderTerms(ctx, article.FolderID, folders)
	if err != nil {
		return err
	}
	if len(folderTerms) > 0 {
		extraTaxonomies["page_category"] = folderTerms
	}
	if len(extraTaxonomies) == 0 {
		extraTaxonomies = nil
	}

	author := s.resolveAuthor(ctx, article.UserID)

	uniqueSlug, err := s.ensureUniqueSlug(ctx, collection, article)
	if err != nil {
		return err
	}

	parent := resolveParent(article.FolderID, folders, st)

	template := ""
	if article.TemplateID != nil {
		template = s.resolveTemplate(ctx, *article.TemplateID)
	}

	createDate := article.CreateDate
	post := domain.Post{
		Title:         article.Title,
		Content:       html,
		Status:        s.config.DefaultStatus,
		Date:          &createDate,
		FeaturedMedia: featured,
		Slug:          uniqueSlug,
		Author:        author,
		Categories:    categories,
		Tags:          tags,
		Excerpt:       article.Description,
		Parent:        parent,
		Template:      template,
	}

	created, err := s.dest.CreatePost(ctx, collection, post, extraTaxonomies)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	st.MarkCompleted(article.ArticleID)
	st.RecordSlug(uniqueSlug, created.ID)
	if err := s.state.Save(ctx, st); err != nil {
		// the post exists but the checkpoint does not; the next run will
		// recreate it under a probed slug
		return fmt.Errorf("save checkpoint: %w", err)
	}

	stats.Migrated++

	if s.publisher != nil {
		event := domain.MigrationEvent{
			Action:     "migrated",
			ArticleID:  article.ArticleID,
			Slug:       uniqueSlug,
			PostID:     created.ID,
			Collection: collection,
			Timestamp:  time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("publish failed", "article_id", article.ArticleID, "error", err)
		} else {
			stats.Published++
		}
	}

	return nil
}

// resolveCollection routes an article to a destination collection by its
// structure ID. Unmapped or structureless articles land in the default
// collection.
func (s *MigrationService) resolveCollection(article domain.Article) (string, bool) {
	if article.StructureID == nil {
		return "", false
	}
	collection, ok := s.config.CollectionMap[*article.StructureID]
	if !ok || collection == "" {
		return "", false
	}
	return collection, true
}

func (s *MigrationService) ensureTerms(ctx context.Context, taxonomy string, names []string) ([]int, error) {
	var ids []int
	for _, name := range names {
		id, err := s.dest.EnsureTerm(ctx, taxonomy, name)
		if err != nil {
			return nil, fmt.Errorf("ensure %s term %q: %w", taxonomy, name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ensureFolderTerms maps the article's folder chain to hierarchy terms,
// root first.
func (s *MigrationService) ensureFolderTerms(ctx context.Context, folderID *int64, folders map[int64]domain.Folder) ([]int, error) {
	names := folderChain(folderID, folders)
	return s.ensureTerms(ctx, "page_category", names)
}

// folderChain walks from the article's folder up to the root and returns
// the names in root-to-leaf order.
func folderChain(folderID *int64, folders map[int64]domain.Folder) []string {
	if folderID == nil {
		return nil
	}

	var names []string
	current := *folderID
	for {
		folder, ok := folders[current]
		if !ok {
			break
		}
		names = append([]string{folder.Name}, names...)
		if folder.ParentFolderID <= 0 {
			break
		}
		current = folder.ParentFolderID
	}
	return names
}

// resolveAuthor prefers the static mapping and falls back to ensuring a
// destination user. Any failure downgrades to no author rather than
// losing the article.
func (s *MigrationService) resolveAuthor(ctx context.Context, userID int64) *int {
	if mapped, ok := s.config.AuthorMap[userID]; ok {
		return &mapped
	}

	user, err := s.users.User(ctx, userID)
	if err != nil {
		s.logger.Warn("author lookup failed, migrating without author", "user_id", userID, "error", err)
		return nil
	}

	id, err := s.dest.EnsureUser(ctx, user.ScreenName, user.EmailAddress, user.FullName, "author")
	if err != nil {
		s.logger.Warn("ensure user failed, migrating without author",
			"screen_name", user.ScreenName,
			"email", user.EmailAddress,
			"error", err,
		)
		return nil
	}
	return &id
}

// ensureUniqueSlug slugifies the source slug (or the title) and probes
// the destination until a free spelling is found: slug, slug-2, slug-3…
func (s *MigrationService) ensureUniqueSlug(ctx context.Context, collection string, article domain.Article) (string, error) {
	desired := ""
	if article.URLTitle != nil && strings.TrimSpace(*article.URLTitle) != "" {
		desired = *article.URLTitle
	} else {
		desired = article.Title
	}

	base := slug.Make(desired)
	if base == "" {
		base = "pagina"
	}

	exists, err := s.dest.ExistsBySlug(ctx, collection, base)
	if err != nil {
		return "", fmt.Errorf("check slug %q: %w", base, err)
	}
	if !exists {
		return base, nil
	}

	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		exists, err := s.dest.ExistsBySlug(ctx, collection, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}
}

// resolveParent finds the closest ancestor folder whose slug was already
// created in this or a previous run.
func resolveParent(folderID *int64, folders map[int64]domain.Folder, st *domain.MigrationState) *int {
	if folderID == nil {
		return nil
	}

	current := *folderID
	for {
		folder, ok := folders[current]
		if !ok {
			return nil
		}
		if id, found := st.PostIDBySlug(slug.Make(folder.Name)); found {
			return &id
		}
		if folder.ParentFolderID <= 0 {
			return nil
		}
		current = folder.ParentFolderID
	}
}

// resolveTemplate translates a source template ID through the template
// map: direct key, then normalized key (upper case, dashes to
// underscores), then the DEFAULT entry.
func (s *MigrationService) resolveTemplate(ctx context.Context, templateID string) string {
	if mapped, ok := s.config.TemplateMap[templateID]; ok && strings.TrimSpace(mapped) != "" {
		return mapped
	}

	normalized := strings.ReplaceAll(strings.ToUpper(templateID), "-", "_")
	if mapped, ok := s.config.TemplateMap[normalized]; ok && strings.TrimSpace(mapped) != "" {
		return mapped
	}

	name := templateID
	if s.templates != nil {
		if tpl, err := s.templates.Template(ctx, templateID); err == nil && tpl != nil {
			name = tpl.Name
		}
	}
	s.logger.Warn("template not mapped", "template_id", templateID, "template_name", name)

	if def, ok := s.config.TemplateMap["DEFAULT"]; ok {
		return strings.TrimSpace(def)
	}
	return ""
}
