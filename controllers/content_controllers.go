package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/felizhandmade/feliz-store/docstore"
	"github.com/felizhandmade/feliz-store/utils"
)

// contentCollections are the free-form document sets the admin content
// screens edit. Anything else is rejected; typed data (products, orders,
// settings) has its own endpoints.
var contentCollections = map[string]bool{
	"pages":                 true,
	"quick_view_items":      true,
	"milestones":            true,
	"support_channels":      true,
	"vlog_video_posts":      true,
	"vlog_experience_posts": true,
}

type ContentController struct {
	Store docstore.Store
}

func NewContentController(store docstore.Store) *ContentController {
	return &ContentController{Store: store}
}

func (cc *ContentController) collection(c *gin.Context) (string, bool) {
	name := c.Param("collection")
	if !contentCollections[name] {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown collection %q", name))
		return "", false
	}
	return name, true
}

// ListDocs -> ?order_by=sort_order&desc=1&limit=20
func (cc *ContentController) ListDocs(c *gin.Context) {
	name, ok := cc.collection(c)
	if !ok {
		return
	}

	opt := docstore.ListOptions{
		OrderBy: c.Query("order_by"),
		Desc:    c.Query("desc") == "1",
	}
	if limit := c.Query("limit"); limit != "" {
		fmt.Sscanf(limit, "%d", &opt.Limit)
	}

	docs, err := cc.Store.List(name, opt)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Documents", docs)
}

func (cc *ContentController) GetDoc(c *gin.Context) {
	name, ok := cc.collection(c)
	if !ok {
		return
	}

	doc, err := cc.Store.Get(name, c.Param("doc_id"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if doc == nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("document not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Document", doc)
}

// UpsertDoc merges the request body into the document.
func (cc *ContentController) UpsertDoc(c *gin.Context) {
	name, ok := cc.collection(c)
	if !ok {
		return
	}

	var body docstore.Doc
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	id := c.Param("doc_id")
	if err := cc.Store.Upsert(name, id, body); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Document saved", gin.H{"id": id})
}

func (cc *ContentController) DeleteDoc(c *gin.Context) {
	name, ok := cc.collection(c)
	if !ok {
		return
	}

	id := c.Param("doc_id")
	if err := cc.Store.Delete(name, id); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Document deleted", gin.H{"id": id})
}
