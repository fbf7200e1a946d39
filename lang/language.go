package lang

import (
	"fmt"
	"sync"
)

type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleChinese Locale = "zh"
)

type TabsStrings struct {
	Library  string
	Settings string
}

type LibraryStrings struct {
	LoadedTemplate  string
	SkippedTemplate string
	Empty           string
	ScanFailed      string
	RefreshHint     string
}

type SettingsStrings struct {
	LanguageLabel      string
	LanguageDetail     string
	LineSpacingLabel   string
	LineSpacingDetail  string
	FontSizeLabel      string
	FontSizeDetail     string
	LanguageNames      map[Locale]string
	SaveFailedTemplate string
}

type ReaderStrings struct {
	NoChapters       string
	ProgressTemplate string
}

type TOCStrings struct {
	Title          string
	StatusSingular string
	StatusPlural   string
	FilterPrompt   string
}

type NovelStrings struct {
	UnknownTitle  string
	UnknownAuthor string
}

type CommonStrings struct {
	UnknownState string
}

type Strings struct {
	Tabs     TabsStrings
	Library  LibraryStrings
	Settings SettingsStrings
	Reader   ReaderStrings
	TOC      TOCStrings
	Novel    NovelStrings
	Common   CommonStrings
}

var (
	mu sync.RWMutex

	translations = map[Locale]*Strings{
		LocaleChinese: {
			Tabs: TabsStrings{
				Library:  "书架",
				Settings: "设置",
			},
			Library: LibraryStrings{
				LoadedTemplate:  "已加载 %d 本小说",
				SkippedTemplate: "已跳过 %d 个无法解码的文件",
				Empty:           "文件夹中没有找到txt文件",
				ScanFailed:      "扫描失败: %v",
				RefreshHint:     "按 r 刷新列表",
			},
			Settings: SettingsStrings{
				LanguageLabel:     "语言",
				LanguageDetail:    "使用左右键切换语言",
				LineSpacingLabel:  "行间距",
				LineSpacingDetail: "使用左右键调整行间距",
				FontSizeLabel:     "字体大小",
				FontSizeDetail:    "使用左右键调整字体大小",
				LanguageNames: map[Locale]string{
					LocaleChinese: "中文",
					LocaleEnglish: "英文",
				},
				SaveFailedTemplate: "无法保存设置: %v",
			},
			Reader: ReaderStrings{
				NoChapters:       "未识别到章节",
				ProgressTemplate: "%d/%d",
			},
			TOC: TOCStrings{
				Title:          "目录",
				StatusSingular: "章",
				StatusPlural:   "章",
				FilterPrompt:   "搜索：",
			},
			Novel: NovelStrings{
				UnknownTitle:  "未知标题",
				UnknownAuthor: "未知",
			},
			Common: CommonStrings{
				UnknownState: "未知状态",
			},
		},
		LocaleEnglish: {
			Tabs: TabsStrings{
				Library:  "Library",
				Settings: "Settings",
			},
			Library: LibraryStrings{
				LoadedTemplate:  "Loaded %d novels",
				SkippedTemplate: "Skipped %d undecodable files",
				Empty:           "No txt files found in the folder",
				ScanFailed:      "Scan failed: %v",
				RefreshHint:     "Press r to refresh",
			},
			Settings: SettingsStrings{
				LanguageLabel:     "Language",
				LanguageDetail:    "Use left/right to switch language",
				LineSpacingLabel:  "Line Spacing",
				LineSpacingDetail: "Use left/right to adjust line spacing",
				FontSizeLabel:     "Font Size",
				FontSizeDetail:    "Use left/right to adjust font size",
				LanguageNames: map[Locale]string{
					LocaleChinese: "Chinese",
					LocaleEnglish: "English",
				},
				SaveFailedTemplate: "Failed to save settings: %v",
			},
			Reader: ReaderStrings{
				NoChapters:       "No chapters recognized",
				ProgressTemplate: "%d/%d",
			},
			TOC: TOCStrings{
				Title:          "Table of Contents",
				StatusSingular: "chapter",
				StatusPlural:   "chapters",
				FilterPrompt:   "Search:",
			},
			Novel: NovelStrings{
				UnknownTitle:  "Untitled",
				UnknownAuthor: "Unknown",
			},
			Common: CommonStrings{
				UnknownState: "Unknown state",
			},
		},
	}

	availableLocales = []Locale{
		LocaleChinese,
		LocaleEnglish,
	}

	currentLocale = LocaleChinese
	current       = translations[currentLocale]
)

func AvailableLocales() []Locale {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Locale, len(availableLocales))
	copy(out, availableLocales)
	return out
}

func SetLocale(loc Locale) bool {
	mu.Lock()
	defer mu.Unlock()
	strings, ok := translations[loc]
	if !ok {
		return false
	}
	currentLocale = loc
	current = strings
	return true
}

func CurrentLocale() Locale {
	mu.RLock()
	defer mu.RUnlock()
	return currentLocale
}

func Active() *Strings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func LanguageName(loc Locale) string {
	s := Active()
	if name, ok := s.Settings.LanguageNames[loc]; ok {
		return name
	}
	return string(loc)
}

func LibraryLoaded(count int) string {
	s := Active()
	return fmt.Sprintf(s.Library.LoadedTemplate, count)
}

func LibrarySkipped(count int) string {
	s := Active()
	return fmt.Sprintf(s.Library.SkippedTemplate, count)
}

func LibraryScanFailed(err error) string {
	s := Active()
	return fmt.Sprintf(s.Library.ScanFailed, err)
}

func SettingsSaveFailed(err error) string {
	s := Active()
	return fmt.Sprintf(s.Settings.SaveFailedTemplate, err)
}
