package questions

import "github.com/avikamggh/ai-interviewer/pkg/resume"

var hindiCatalog = Catalog{
	General: []string{
		"आप इस प्रकार के role में क्यों interested हैं?",
		"अगले 5 सालों के लिए आपके career goals क्या हैं?",
		"आप नई technologies के साथ कैसे updated रहते हैं?",
		"आपके काम में आपको क्या motivate करता है?",
		"अपने बारे में और अपने background के बारे में बताएं।",
		"आप अपनी सबसे बड़ी professional achievement क्या मानते हैं?",
		"आप work-life balance को कैसे handle करते हैं?",
		"आप किस प्रकार के work environment को prefer करते हैं?",
		"आप नई opportunity क्यों ढूंढ रहे हैं?",
		"आपकी salary expectations क्या हैं?",
	},
	Behavioral: []string{
		"मुझे एक challenging project के बारे में बताएं जिस पर आपने काम किया था।",
		"आप tight deadlines और pressure को कैसे handle करते हैं?",
		"एक समय के बारे में बताएं जब आपको जल्दी कोई नई technology सीखनी पड़ी।",
		"आप अपने काम में problem-solving को कैसे approach करते हैं?",
		"किसी समय के बारे में बताएं जब आप team member से disagree हुए थे।",
		"एक situation के बारे में बताएं जब आपको कोई complex issue debug करना पड़ा।",
		"आप नई technologies के साथ कैसे updated रहते हैं?",
		"किसी समय के बारे में बताएं जब आपको constructive criticism मिली।",
		"Team environment में काम करने के अपने experience के बारे में बताएं।",
		"जब आप multiple projects पर काम कर रहे हों तो tasks को कैसे prioritize करते हैं?",
	},
	Technical: map[resume.Skill][]string{
		resume.SkillJavaScript: {
			"क्या आप बता सकते हैं कि JavaScript में closures क्या हैं?",
			"let, const, और var के बीच क्या अंतर है?",
			"आप JavaScript में asynchronous operations को कैसे handle करते हैं?",
			"JavaScript में hoisting की concept को समझाएं।",
			"Arrow functions क्या हैं और वे regular functions से कैसे अलग हैं?",
		},
		resume.SkillPython: {
			"Python में decorators क्या हैं और आप उन्हें कैसे उपयोग करते हैं?",
			"Python में lists और tuples के बीच अंतर बताएं।",
			"आप Python में exceptions को कैसे handle करते हैं?",
			"Python में Global Interpreter Lock (GIL) क्या है?",
			"Python में list comprehensions को examples के साथ समझाएं।",
		},
		resume.SkillReact: {
			"React hooks क्या हैं और वे क्यों उपयोगी हैं?",
			"React में virtual DOM की concept को समझाएं।",
			"आप React application में state को कैसे manage करते हैं?",
			"Functional और class components के बीच क्या अंतर है?",
			"आप React में side effects को कैसे handle करते हैं?",
		},
		resume.SkillNodeJS: {
			"Node.js में event loop क्या है?",
			"आप Node.js में file operations को कैसे handle करते हैं?",
			"Express.js में middleware को समझाएं।",
			"Node.js में streams क्या हैं और आप उन्हें कब उपयोग करेंगे?",
			"आप Node.js applications में errors को कैसे handle करते हैं?",
		},
		resume.SkillDatabase: {
			"SQL और NoSQL databases के बीच क्या अंतर है?",
			"Database normalization और इसके benefits को समझाएं।",
			"Database indexes क्या हैं और वे performance को कैसे improve करते हैं?",
			"आप एक slow database query को कैसे optimize करेंगे?",
			"Database transactions में ACID properties को समझाएं।",
		},
		resume.SkillFrontend: {
			"Responsive web design क्या है और आप इसे कैसे implement करते हैं?",
			"CSS में box model को समझाएं।",
			"CSS preprocessors क्या हैं और उनके advantages क्या हैं?",
			"आप cross-browser compatibility कैसे ensure करते हैं?",
			"Progressive web app (PWA) क्या है?",
		},
		resume.SkillBackend: {
			"RESTful API design और इसके principles क्या हैं?",
			"आप authentication और authorization को कैसे handle करते हैं?",
			"Microservices architecture को समझाएं।",
			"Caching क्या है और आप इसे कैसे implement करते हैं?",
			"आप API security कैसे ensure करते हैं?",
		},
	},
}
