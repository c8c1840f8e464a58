package locale

const (
	KeyAppTitle          = "app.title"
	KeyHomeMaterials     = "home.materials"
	KeyHomeExams         = "home.exams"
	KeyBack              = "nav.back"
	KeyLoading           = "nav.loading"
	KeyHelp              = "nav.help"
	KeyDataUnavailable   = "error.data_unavailable"
	KeyMaterialsMissing  = "error.materials_unavailable"
	KeyExamsMissing      = "error.exams_unavailable"
	KeyNoVideoID         = "error.no_video_id"
	KeyNoLectures        = "empty.lectures"
	KeyNoExams           = "empty.exams"
	KeyNoMaterials       = "empty.materials"
	KeyProgressClass     = "progress.class"
	KeyProgressCourse    = "progress.course"
	KeyClassCount        = "count.classes"
	KeyChapterCount      = "count.chapters"
	KeyLectureCount      = "count.lectures"
	KeySubjectExams      = "exams.subject"
	KeyDownload          = "action.download"
	KeyMarkCompleted     = "action.mark_completed"
	KeyCompleted         = "action.completed"
	KeyOpenPlayer        = "action.open"
	KeyCopyURL           = "action.copy"
	KeyLectureCompleted  = "notify.lecture_completed"
	KeyLectureMarked     = "notify.lecture_marked"
	KeyLectureUncomplete = "notify.lecture_uncompleted"
	KeyURLCopied         = "notify.url_copied"
	KeyPlayerOpened      = "notify.player_opened"
	KeyActionFailed      = "notify.action_failed"
	KeyCatalogReloaded   = "notify.catalog_reloaded"
	KeySessionOnly       = "notify.session_only"
	KeyIntroTitle        = "intro.title"
	KeyIntroBody         = "intro.body"
	KeyIntroConfirm      = "intro.confirm"
	KeyTabSummaries      = "tab.summaries"
	KeyTabNotes          = "tab.notes"
	KeyTabBooks          = "tab.books"
	KeySyllabusSaved     = "notify.syllabus_saved"
	KeySettingsNotSaved  = "notify.settings_not_saved"
)

var catalog = map[string]map[string]string{
	English: {
		KeyAppTitle:          "Lectures",
		KeyHomeMaterials:     "Study materials",
		KeyHomeExams:         "Exam archive",
		KeyBack:              "back",
		KeyLoading:           "Loading...",
		KeyHelp:              "↑/↓ move • enter select • c complete • e export • esc back • d theme • q quit",
		KeyDataUnavailable:   "Data not available",
		KeyMaterialsMissing:  "Materials data not available",
		KeyExamsMissing:      "Exam data not available",
		KeyNoVideoID:         "Could not extract the video id",
		KeyNoLectures:        "No lectures available",
		KeyNoExams:           "No exams available",
		KeyNoMaterials:       "No materials available",
		KeyProgressClass:     "{0}% complete ({1}/{2})",
		KeyProgressCourse:    "{0}% complete",
		KeyClassCount:        "{0} classes",
		KeyChapterCount:      "{0} chapters",
		KeyLectureCount:      "{0} lectures",
		KeySubjectExams:      "{0} exams",
		KeyDownload:          "Download",
		KeyMarkCompleted:     "Mark as completed",
		KeyCompleted:         "Completed",
		KeyOpenPlayer:        "Open player",
		KeyCopyURL:           "Copy link",
		KeyLectureCompleted:  "Lecture completed",
		KeyLectureMarked:     "Lecture marked as completed!",
		KeyLectureUncomplete: "Lecture marked as not completed",
		KeyURLCopied:         "Stream link copied",
		KeyPlayerOpened:      "Opening player",
		KeyActionFailed:      "Action failed",
		KeyCatalogReloaded:   "Catalog reloaded",
		KeySessionOnly:       "Progress could not be saved and is kept for this session only",
		KeyIntroTitle:        "Welcome",
		KeyIntroBody:         "Browse lectures by teacher, track what you have watched, and find study materials and past exams.",
		KeyIntroConfirm:      "Press enter to start",
		KeyTabSummaries:      "Summaries",
		KeyTabNotes:          "Notes",
		KeyTabBooks:          "Books",
		KeySyllabusSaved:     "Syllabus saved: {0}",
		KeySettingsNotSaved:  "Settings could not be saved and apply to this session only",
	},
	Arabic: {
		KeyAppTitle:          "منصة المحاضرات",
		KeyHomeMaterials:     "الملازم والمواد الدراسية",
		KeyHomeExams:         "أرشيف الامتحانات",
		KeyBack:              "رجوع",
		KeyLoading:           "جاري التحميل...",
		KeyHelp:              "↑/↓ تنقل • enter اختيار • c إكمال • e تصدير • esc رجوع • d المظهر • q خروج",
		KeyDataUnavailable:   "البيانات غير متوفرة",
		KeyMaterialsMissing:  "بيانات المواد غير متوفرة",
		KeyExamsMissing:      "بيانات الامتحانات غير متوفرة",
		KeyNoVideoID:         "خطأ في استخراج معرف الفيديو",
		KeyNoLectures:        "لا توجد محاضرات متاحة",
		KeyNoExams:           "لا توجد امتحانات متاحة",
		KeyNoMaterials:       "لا توجد مواد متاحة",
		KeyProgressClass:     "{0}% مكتمل ({1}/{2})",
		KeyProgressCourse:    "{0}% مكتمل",
		KeyClassCount:        "{0} فصل",
		KeyChapterCount:      "{0} فصل",
		KeyLectureCount:      "{0} محاضرة",
		KeySubjectExams:      "امتحانات {0}",
		KeyDownload:          "تحميل",
		KeyMarkCompleted:     "تم إكمال المحاضرة",
		KeyCompleted:         "تم الإكمال",
		KeyOpenPlayer:        "فتح المشغل",
		KeyCopyURL:           "نسخ الرابط",
		KeyLectureCompleted:  "تم تسجيل إكمال المحاضرة!",
		KeyLectureMarked:     "تم تسجيل إكمال المحاضرة بنجاح!",
		KeyLectureUncomplete: "تم إلغاء إكمال المحاضرة",
		KeyURLCopied:         "تم نسخ رابط البث",
		KeyPlayerOpened:      "جاري فتح المشغل",
		KeyActionFailed:      "تعذر تنفيذ العملية",
		KeyCatalogReloaded:   "تم تحديث البيانات",
		KeySessionOnly:       "تعذر حفظ التقدم وسيتم الاحتفاظ به لهذه الجلسة فقط",
		KeyIntroTitle:        "أهلاً بك",
		KeyIntroBody:         "تصفح المحاضرات حسب المدرس وتابع تقدمك واعثر على الملازم والأسئلة الوزارية.",
		KeyIntroConfirm:      "اضغط enter للبدء",
		KeyTabSummaries:      "الملخصات",
		KeyTabNotes:          "الملازم",
		KeyTabBooks:          "الكتب",
		KeySyllabusSaved:     "تم حفظ المنهج: {0}",
		KeySettingsNotSaved:  "تعذر حفظ الإعدادات وستطبق لهذه الجلسة فقط",
	},
}

// TabKey returns the message key for a canonical material tab.
func TabKey(tab string) (string, bool) {
	switch tab {
	case "summaries":
		return KeyTabSummaries, true
	case "notes":
		return KeyTabNotes, true
	case "books":
		return KeyTabBooks, true
	}
	return "", false
}
