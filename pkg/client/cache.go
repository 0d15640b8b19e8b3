package client

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// ExtensionKind names one of the four extension records hanging off an
// employee. It is part of the cache key for extension entries.
type ExtensionKind string

const (
	KindPersonal   ExtensionKind = "personal"
	KindContact    ExtensionKind = "contact"
	KindEmployment ExtensionKind = "employment"
	KindFinancial  ExtensionKind = "financial"
)

// Cache is an explicit in-memory cache for read results. Every entry class
// has its own key space so invalidation can be surgical:
//   - list results keyed by the full filter/page/sort tuple
//   - employee details keyed by employee_id
//   - extension records keyed by (kind, employee_id)
//   - stats under a single fixed key
//
// All methods are safe for concurrent use.
type Cache struct {
	mu         sync.Mutex
	lists      map[string]EmployeePage
	details    map[string]EmployeeDetails
	extensions map[string]any
	stats      *Stats
}

func NewCache() *Cache {
	return &Cache{
		lists:      make(map[string]EmployeePage),
		details:    make(map[string]EmployeeDetails),
		extensions: make(map[string]any),
	}
}

func listKey(opts ListOptions) string {
	var b strings.Builder
	b.WriteString("search=")
	b.WriteString(opts.Search)
	b.WriteString("|status=")
	b.WriteString(opts.EmploymentStatus)
	b.WriteString("|dept=")
	if opts.DepartmentID != nil {
		b.WriteString(strconv.FormatInt(*opts.DepartmentID, 10))
	}
	b.WriteString("|sortBy=")
	b.WriteString(opts.SortBy)
	b.WriteString("|sortOrder=")
	b.WriteString(opts.SortOrder)
	b.WriteString("|page=")
	b.WriteString(strconv.Itoa(opts.Page))
	b.WriteString("|pageSize=")
	b.WriteString(strconv.Itoa(opts.PageSize))
	return b.String()
}

func extensionKey(kind ExtensionKind, employeeID string) string {
	return fmt.Sprintf("%s:%s", kind, employeeID)
}

func (c *Cache) getList(opts ListOptions) (EmployeePage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	page, ok := c.lists[listKey(opts)]
	return page, ok
}

func (c *Cache) putList(opts ListOptions, page EmployeePage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists[listKey(opts)] = page
}

func (c *Cache) getDetails(employeeID string) (EmployeeDetails, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	details, ok := c.details[employeeID]
	return details, ok
}

func (c *Cache) putDetails(details EmployeeDetails) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.details[details.EmployeeID] = details
}

func (c *Cache) getExtension(kind ExtensionKind, employeeID string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.extensions[extensionKey(kind, employeeID)]
	return value, ok
}

func (c *Cache) putExtension(kind ExtensionKind, employeeID string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.extensions[extensionKey(kind, employeeID)] = value
}

func (c *Cache) getStats() (Stats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stats == nil {
		return Stats{}, false
	}
	return *c.stats, true
}

func (c *Cache) putStats(stats Stats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = &stats
}

// invalidateCollections drops every list page and the stats entry. Any
// mutation can change list membership, ordering, or counts.
func (c *Cache) invalidateCollections() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists = make(map[string]EmployeePage)
	c.stats = nil
}

// invalidateEmployee drops the detail entry and all four extension entries
// for one employee.
func (c *Cache) invalidateEmployee(employeeID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.details, employeeID)
	for _, kind := range []ExtensionKind{KindPersonal, KindContact, KindEmployment, KindFinancial} {
		delete(c.extensions, extensionKey(kind, employeeID))
	}
}

func (c *Cache) dropDetails(employeeID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.details, employeeID)
}
