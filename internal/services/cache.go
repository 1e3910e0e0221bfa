package services

import (
	"time"

	"github.com/GregMSThompson/report-cms/internal/dto"
	"github.com/GregMSThompson/report-cms/internal/models"
)

// docCache is the in-process copy of the report document together with its
// write state. It is not safe for concurrent use; contentService guards it.
type docCache struct {
	doc       *models.AppData
	state     models.SyncState
	lastErr   error
	lastSaved time.Time
}

func newDocCache() *docCache {
	return &docCache{state: models.SyncClean}
}

func (c *docCache) ready() bool { return c.doc != nil }

// hydrate adopts d as the document loaded from (or seeded into) the store.
func (c *docCache) hydrate(d *models.AppData) {
	c.doc = d
	c.state = models.SyncClean
	c.lastErr = nil
}

func (c *docCache) invalidate() {
	c.doc = nil
	c.state = models.SyncClean
	c.lastErr = nil
}

// swap replaces the document ahead of a write.
func (c *docCache) swap(d *models.AppData) {
	c.doc = d
	c.state = models.SyncPending
}

func (c *docCache) saved(at time.Time) {
	c.state = models.SyncClean
	c.lastErr = nil
	c.lastSaved = at
}

func (c *docCache) failed(err error) {
	c.state = models.SyncFailed
	c.lastErr = err
}

func (c *docCache) status() dto.SyncStatus {
	st := dto.SyncStatus{State: c.state}
	if c.lastErr != nil {
		st.LastError = c.lastErr.Error()
	}
	if !c.lastSaved.IsZero() {
		t := c.lastSaved
		st.LastSaved = &t
	}
	return st
}
