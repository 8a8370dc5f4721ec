package main

import "anvaya-club/internal/model"

// initialWings is inserted into an empty database.
var initialWings = []model.Wing{
	{
		Name:    "CodeZero",
		Slug:    "codezero",
		About:   "CodeZero is the technical wing of Anvaya Club, dedicated to promoting coding culture and technical skills among students. We organize workshops, hackathons, and coding competitions to enhance programming proficiency.",
		Vision:  "To create a vibrant community of skilled programmers and problem solvers who contribute to technological advancement.",
		Mission: "To organize regular coding workshops, hackathons, and technical sessions that empower students with cutting-edge programming skills and industry-relevant knowledge.",
	},
	{
		Name:    "Kalavaibhava",
		Slug:    "kalavaibhava",
		About:   "Kalavaibhava is the cultural wing of Anvaya Club, celebrating arts, traditions, and cultural diversity. We organize cultural events, competitions, and festivals to showcase student talent.",
		Vision:  "To preserve and promote rich cultural heritage while fostering creativity and artistic expression among students.",
		Mission: "To conduct diverse cultural events, competitions, and celebrations that provide a platform for students to explore and exhibit their artistic talents.",
	},
	{
		Name:    "SheSpark",
		Slug:    "shespark",
		About:   "SheSpark is dedicated to women empowerment in technology and engineering. We create an inclusive environment that supports and encourages women students in their academic and professional journey.",
		Vision:  "To build a strong community of empowered women leaders in technology who inspire and mentor future generations.",
		Mission: "To provide mentorship, networking opportunities, and skill development programs that empower women students to excel in technology and leadership roles.",
	},
	{
		Name:    "UGRS",
		Slug:    "ugrs",
		About:   "UGRS (Undergraduate Research Society) is focused on promoting research culture among undergraduate students. We facilitate research projects, paper publications, and academic collaborations.",
		Vision:  "To establish a thriving research ecosystem that encourages undergraduate students to contribute to scientific knowledge and innovation.",
		Mission: "To support student research initiatives, facilitate paper publications, and create opportunities for collaboration with industry and academia.",
	},
	{
		Name:    "Udbhava",
		Slug:    "udbhava",
		About:   "Udbhava is the innovation and entrepreneurship wing of Anvaya Club. We nurture startup ideas, foster innovation, and support student entrepreneurs in building their ventures.",
		Vision:  "To cultivate an entrepreneurial mindset and create successful startups that solve real-world problems and contribute to economic growth.",
		Mission: "To provide incubation support, mentorship, and resources for student startups while organizing innovation challenges and entrepreneurship workshops.",
	},
}

// wingContent is applied by --update, matched on slug. Wings it names that do not exist yet are
// created.
var wingContent = []model.Wing{
	{
		Name:    "CodeZero",
		Slug:    "codezero",
		About:   "CodeZero is the technical coding wing of Anvaya, designed to cultivate a strong problem-solving and innovation-driven community. It focuses on coding excellence, algorithmic thinking, and real-world development through challenges, workshops, and interdisciplinary projects.",
		Vision:  "To cultivate a dynamic community of passionate learners, empowering them to excel in coding, problem-solving, and innovation, shaping responsible professionals ready to drive technological advancements for a smarter, inclusive, and ethical society.",
		Mission: "1. To foster an interactive and collaborative learning environment with a focus on coding challenges, development projects, and real-world problem-solving.\n2. To inspire creativity and innovation through interdisciplinary projects and research initiatives that drive meaningful solutions.\n3. To instil a sense of responsibility, ethical practices, and community impact in every member, ensuring they contribute positively to society.",
	},
	{
		Name:    "Kalavaibhava",
		Slug:    "kalavaibhava",
		About:   "KalaVaibhava is the cultural wing of Anvaya, dedicated to celebrating creativity, diversity, and artistic expression. It provides a dynamic platform for students to showcase talents in music, dance, literature, drama, and other cultural domains.",
		Vision:  "To celebrate creativity and cultural diversity by nurturing artistic expression, confidence, and unity among students, contributing to a vibrant and inclusive campus culture within Anvaya.",
		Mission: "1. To provide a dynamic platform for students to express creativity and artistic talents through diverse cultural and literary activities.\n2. To promote cultural awareness, inclusivity, and appreciation of heritage while embracing contemporary forms of expression.\n3. To foster teamwork, leadership, and communication skills through collaborative cultural initiatives and events.\n4. To enhance campus engagement and social harmony by organizing cultural programs that encourage participation and community bonding.",
	},
	{
		Name:    "SheSpark",
		Slug:    "shespark",
		About:   "SheSpark is the women empowerment wing of Anvaya, dedicated to fostering an inclusive environment where women students can grow as confident technologists, leaders, and innovators. It provides a supportive platform for technical upskilling through workshops, collaborative projects, mentorship, and peer learning.",
		Vision:  "To inspire and empower women students to emerge as confident leaders, innovators, and ethical professionals, fostering inclusivity and excellence in emerging technologies under the Anvaya student community.",
		Mission: "1. To create a safe, inclusive, and supportive platform that encourages women students to explore, learn, and grow through hands-on and collaborative activities.\n2. To enhance technical competence and problem-solving skills by engaging in projects, workshops, and peer learning initiatives.\n3. To nurture leadership, confidence, and professional ethics among women through mentorship, teamwork, and role-model interactions.\n4. To promote industry exposure, research orientation, and societal engagement by connecting members with experts, competitions, and outreach programs.",
	},
	{
		Name:    "Uthsaha",
		Slug:    "uthsaha",
		About:   "Uthsaha is the sports wing of Anvaya, focused on fostering physical fitness, teamwork, and discipline among students. It promotes a balanced academic life by encouraging participation in sports and fitness activities that enhance both physical and mental well-being.",
		Vision:  "To foster a vibrant sporting culture that promotes physical fitness, teamwork, discipline, and sportsmanship, nurturing well-rounded individuals within the Anvaya student community.",
		Mission: "1. To encourage active participation in sports and fitness activities that enhance physical and mental well-being.\n2. To develop team spirit, leadership, and discipline through organized sports events, competitions, and training programs.\n3. To provide opportunities for students to identify, nurture, and showcase sporting talent at various levels.\n4. To promote ethical conduct, inclusivity, and sportsmanship, contributing to a healthy and collaborative campus environment.",
	},
}
