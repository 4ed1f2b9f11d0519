package config

import (
	"sync"

	"github.com/noelruault/emd/internal/i18n"
)

// Region is one selectable AWS region.
type Region struct {
	Code   string
	NameEn string
	NameKo string
}

// Name returns the localised region name.
func (r Region) Name(lang i18n.Language) string {
	if lang == i18n.Korean {
		return r.NameKo
	}
	return r.NameEn
}

// Regions lists the regions offered on the region screen, in display order.
var Regions = []Region{
	{Code: "ap-northeast-2", NameEn: "Seoul", NameKo: "서울"},
	{Code: "ap-northeast-1", NameEn: "Tokyo", NameKo: "도쿄"},
	{Code: "ap-northeast-3", NameEn: "Osaka", NameKo: "오사카"},
	{Code: "ap-southeast-1", NameEn: "Singapore", NameKo: "싱가포르"},
	{Code: "ap-southeast-2", NameEn: "Sydney", NameKo: "시드니"},
	{Code: "ap-south-1", NameEn: "Mumbai", NameKo: "뭄바이"},
	{Code: "us-east-1", NameEn: "N. Virginia", NameKo: "버지니아"},
	{Code: "us-east-2", NameEn: "Ohio", NameKo: "오하이오"},
	{Code: "us-west-1", NameEn: "N. California", NameKo: "캘리포니아"},
	{Code: "us-west-2", NameEn: "Oregon", NameKo: "오레곤"},
	{Code: "eu-west-1", NameEn: "Ireland", NameKo: "아일랜드"},
	{Code: "eu-central-1", NameEn: "Frankfurt", NameKo: "프랑크푸르트"},
}

// RegionIndex returns the position of code in Regions, or -1.
func RegionIndex(code string) int {
	for i, r := range Regions {
		if r.Code == code {
			return i
		}
	}
	return -1
}

// RegionCell holds the active region. The UI goroutine writes it; command
// goroutines read it when they are built.
type RegionCell struct {
	mu     sync.RWMutex
	region string
}

// NewRegionCell returns a cell holding region.
func NewRegionCell(region string) *RegionCell {
	return &RegionCell{region: region}
}

// Get returns the current region.
func (c *RegionCell) Get() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.region
}

// Set replaces the current region.
func (c *RegionCell) Set(region string) {
	c.mu.Lock()
	c.region = region
	c.mu.Unlock()
}
